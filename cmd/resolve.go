package cmd

import (
	"fmt"
	"strconv"

	"almanac.dev/pkg/almanac/internal/domain"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <almanac> <seed> [seed...]",
		Short: "Trace seeds through every map",
		Long: `Show the value of each given seed after every conversion map, ending
with its location.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args[1:])
			if err != nil {
				return err
			}

			return workflow.Resolve(cmd.Context(), domain.ResolveArgs{
				Input: m.Path(args[0]),
				Seeds: seeds,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func parseSeeds(args []string) ([]uint64, error) {
	seeds := make([]uint64, 0, len(args))

	for _, arg := range args {
		seed, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", arg, err)
		}

		seeds = append(seeds, seed)
	}

	return seeds, nil
}
