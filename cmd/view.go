package cmd

import (
	"almanac.dev/pkg/almanac/internal/domain"
	m "almanac.dev/pkg/almanac/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View reports of previous solve runs",
		Long:  "View reports of previous solve runs from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
