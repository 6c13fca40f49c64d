package cmd

import (
	"fmt"
	"time"

	"almanac.dev/pkg/almanac/internal/domain"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const solveLongDescription = `Find the lowest location reached by any seed of the almanac.

With --mode single every number on the seeds line is one seed. With
--mode pairs the numbers are read as "start length" pairs, each describing
a range of seeds.

` + almanacFormatHelp

var solveParallelFlag int
var solveChunkSizeFlag uint64
var solveStrategyFlag string
var solveTimeoutFlag int

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <almanac>",
		Short: "Find the lowest location for the almanac seeds",
		Long:  solveLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := m.ParseSeedMode(viper.GetString(seedModeConfigKey))
			if err != nil {
				return err
			}

			strategy, err := m.ParseStrategy(viper.GetString(strategyConfigKey))
			if err != nil {
				return err
			}

			timeout := viper.GetInt(timeoutConfigKey)
			if timeout < 0 {
				return fmt.Errorf("invalid --%s %d: must not be negative", timeoutFlagName, timeout)
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Input:     m.Path(args[0]),
				Mode:      mode,
				Strategy:  strategy,
				Threads:   viper.GetInt(parallelConfigKey),
				ChunkSize: viper.GetUint64(chunkSizeConfigKey),
				Timeout:   time.Duration(timeout) * time.Second,
				Reports:   m.Path(viper.GetString(outputFlagName)),
				NoReport:  viper.GetBool(noReportFlagName),
			})
		},
	}

	configureSolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func configureSolveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&solveParallelFlag, parallelFlagName, "p", defaultParallel, "number of parallel workers (0 uses every CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().Uint64Var(&solveChunkSizeFlag, chunkSizeFlagName, defaultChunkSize, "seeds evaluated per unit of work")
	bindFlagToConfig(cmd.Flags().Lookup(chunkSizeFlagName), chunkSizeConfigKey)

	cmd.Flags().StringVar(&solveStrategyFlag, strategyFlagName, defaultStrategy, `search strategy: "brute-force" or "intervals"`)
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), strategyConfigKey)

	cmd.Flags().IntVar(&solveTimeoutFlag, timeoutFlagName, defaultTimeout, "abort the search after this many seconds (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)
}
