package main

import (
	"fmt"

	"github.com/iwvelando/quickcalc/internal/config"
	"github.com/iwvelando/quickcalc/internal/logging"
	"github.com/iwvelando/quickcalc/pkg/constants"
	"github.com/iwvelando/quickcalc/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once the root command has
// loaded configuration and built the logger.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quickcalc",
		Short: "Tip, discount, percentage and BMI calculators",
		Long: `quickcalc computes tip splits, stacked discounts, percentage relationships
and BMI. Numeric arguments are read leniently: blank or non-numeric values
count as 0, so the calculators always produce a result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags().Changed("config"))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&a.outputFormat, "output-format", "", "output format override: pretty, json, csv, yaml")

	root.AddCommand(
		newTipCmd(a),
		newDiscountCmd(a),
		newPercentCmd(a),
		newBMICmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, resolves the output format and builds the logger.
// An explicitly requested config file must exist; the default one is optional.
func (a *app) setup(explicitConfig bool) error {
	var err error
	if explicitConfig {
		a.conf, err = config.LoadConfiguration(a.configPath)
	} else {
		a.conf, err = config.LoadConfigurationOrDefaults(a.configPath)
	}
	if err != nil {
		return err
	}

	if a.outputFormat != "" {
		a.conf.Output.Format = a.outputFormat
	}

	warnings, err := a.conf.ValidateConfiguration()
	if err != nil {
		return err
	}

	a.logger, err = logging.NewLogger(a.conf.Logging, a.logLevel)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	return nil
}

func (a *app) render(cmd *cobra.Command, op string, result interface{}) error {
	a.logger.Debug("calculation complete",
		zap.String("op", op),
		zap.Any("result", result),
	)
	return output.Render(cmd.OutOrStdout(), a.conf.Output.Format, result)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quickcalc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
