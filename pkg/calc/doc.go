// Package calc implements the calculation engine behind the tip, discount,
// percentage and BMI calculators.
//
// Every function in this package is pure: no I/O, no clock, no shared state.
// Results may be computed concurrently from any number of goroutines.
//
// Inputs are treated as untrusted form values. Blank, partial, non-numeric,
// negative and non-finite values degrade to 0 instead of producing an error,
// so a form that has not been filled in yet renders all-zero results. Callers
// that need to tell "no input" apart from "zero" must validate before calling
// into this package; see PercentageResult.Defined for the one place where the
// engine reports that a guard fired.
package calc
