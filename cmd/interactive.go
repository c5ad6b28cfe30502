package cmd

import (
	"elektrichka/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick the filter from a menu",
	Long:  `Launch a small form to choose which departures to list, then print the listing.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prepareSchedule(cmd.OutOrStdout())
		return tui.RunTUI(schedulePath, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
