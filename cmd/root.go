// Package cmd provides the root command and CLI setup for almanac.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"almanac.dev/pkg/almanac/internal/adapter"
	"almanac.dev/pkg/almanac/internal/controller"
	"almanac.dev/pkg/almanac/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var fsAdapter adapter.FSAdapter
var parser adapter.AlmanacParser
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noReportFlag skips writing a run report when set.
var noReportFlag bool

// seedModeFlag selects how the seeds line is read.
var seedModeFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	parser = adapter.NewTextAlmanacParser()
	reportStore = adapter.NewReportStore(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, parser, reportStore, ui, domain.NewSolver)
}

const almanacFormatHelp = `The almanac file starts with a seeds line followed by seven maps:
  seeds: 79 14 55 13

  seed-to-soil map:
  50 98 2
  52 50 48
  ...

Every map row is "destination source length". Rows are matched in file order
and the first matching row wins; unmatched values pass through unchanged.`

const rootLongDescription = `Almanac follows seeds through the seven conversion maps of an almanac
(seed, soil, fertilizer, water, light, temperature, humidity, location) and
finds the lowest location any seed reaches.

` + almanacFormatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Seed almanac solver",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noReportFlag, noReportFlagName, defaultNoReport, "do not write a report for solve runs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noReportFlagName), noReportFlagName)

	cmd.PersistentFlags().StringVarP(&seedModeFlag, seedModeFlagName, "m", defaultSeedMode, `how to read the seeds line: "single" or "pairs"`)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(seedModeFlagName), seedModeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
