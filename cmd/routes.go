package cmd

import (
	"elektrichka/pkg/scraper"
	"elektrichka/pkg/tui"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes [all|weekdays|daily]",
	Short: "Show the next departures grouped by destination",
	Long:  "Group the filtered departures by route and show the first few trains of each, earliest route first.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		mode := modeFromArgs(args)
		prepareSchedule(cmd.OutOrStdout())

		entries, err := scraper.LoadSchedule(schedulePath, mode)
		if err != nil {
			return err
		}

		return tui.RenderRoutes(cmd.OutOrStdout(), mode, scraper.SummarizeRoutes(entries, limit))
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().IntP("limit", "n", 3, "Departures to show per route (0 shows all)")
}
