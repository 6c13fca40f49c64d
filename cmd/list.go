package cmd

import (
	"almanac.dev/pkg/almanac/internal/domain"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <almanac>",
		Short: "List the maps and seed ranges of an almanac",
		Long: `List every conversion map of the almanac in chain order together with
the seed ranges read from the seeds line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := m.ParseSeedMode(viper.GetString(seedModeConfigKey))
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Input: m.Path(args[0]),
				Mode:  mode,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
