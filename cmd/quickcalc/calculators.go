package main

import (
	"github.com/iwvelando/quickcalc/pkg/calc"
	"github.com/iwvelando/quickcalc/pkg/validation"
	"github.com/spf13/cobra"
)

func newTipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tip BILL [TIP_PERCENT] [PEOPLE]",
		Short: "Split a bill with tip between people",
		Long: `Computes the tip, the total, and each person's share.
TIP_PERCENT and PEOPLE fall back to defaults.tipPercent and defaults.people.`,
		Example: "  quickcalc tip 100 15 2",
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := calc.TipRequest{
				BillAmount:  args[0],
				TipPercent:  a.conf.Defaults.TipPercent,
				PeopleCount: a.conf.Defaults.People,
			}
			if len(args) > 1 {
				req.TipPercent = args[1]
			}
			if len(args) > 2 {
				req.PeopleCount = args[2]
			}
			return a.render(cmd, "main.tip", req.Compute())
		},
	}
}

func newDiscountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discount PRICE FIRST_PERCENT [SECOND_PERCENT]",
		Short: "Apply one or two stacked discounts",
		Long: `Applies FIRST_PERCENT to PRICE, then SECOND_PERCENT to what remains.
Two 50% discounts take 75% off in total.`,
		Example: "  quickcalc discount 200 50 50",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := calc.DiscountRequest{
				OriginalPrice:        args[0],
				FirstDiscountPercent: args[1],
			}
			if len(args) > 2 {
				req.SecondDiscountPercent = args[2]
			}
			return a.render(cmd, "main.discount", req.Compute())
		},
	}
}

func newPercentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "percent MODE X Y",
		Short: "Evaluate a percentage relationship",
		Long: `Modes:
  what_is   what is X% of Y
  is_what   X is what % of Y
  increase  percentage change from X up to Y
  decrease  percentage change from X down to Y`,
		Example: "  quickcalc percent increase 50 75",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := validation.ValidateMode(args[0])
			if err != nil {
				return err
			}
			req := calc.PercentageRequest{Mode: mode, X: args[1], Y: args[2]}
			return a.render(cmd, "main.percent", req.Compute())
		},
	}
}

func newBMICmd(a *app) *cobra.Command {
	var units string

	cmd := &cobra.Command{
		Use:   "bmi WEIGHT HEIGHT",
		Short: "Compute BMI, its category and the ideal weight range",
		Long: `Metric takes kilograms and centimeters, imperial takes pounds and inches.
Without --units, defaults.unitSystem is used.`,
		Example: "  quickcalc bmi 70 175\n  quickcalc bmi 154 69 --units imperial",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitSystem := a.conf.UnitSystem()
			if units != "" {
				parsed, err := validation.ValidateUnitSystem(units)
				if err != nil {
					return err
				}
				unitSystem = parsed
			}
			req := calc.BMIRequest{Weight: args[0], Height: args[1], UnitSystem: unitSystem}
			return a.render(cmd, "main.bmi", req.Compute())
		},
	}
	cmd.Flags().StringVar(&units, "units", "", "unit system: metric or imperial")
	return cmd
}
