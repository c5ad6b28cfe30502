package cmd

import (
	"fmt"
	"os"
	"time"

	"elektrichka/pkg/config"
	"elektrichka/pkg/exporter"
	"elektrichka/pkg/scraper"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export [all|weekdays|daily]",
	Short: "Export the filtered departures to an ICS file",
	Long:  `Write one calendar event per departure and day, so the timetable can be imported into a calendar app.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		days, _ := cmd.Flags().GetInt("days")
		fromStr, _ := cmd.Flags().GetString("from")
		tz, _ := cmd.Flags().GetString("timezone")

		if days <= 0 {
			return fmt.Errorf("--days must be positive, got %d", days)
		}

		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("could not load timezone: %w", err)
		}

		from := time.Now().In(loc)
		if fromStr != "" {
			from, err = time.ParseInLocation("2006-01-02", fromStr, loc)
			if err != nil {
				return fmt.Errorf("invalid --from date (expected YYYY-MM-DD): %w", err)
			}
		}

		mode := modeFromArgs(args)
		prepareSchedule(cmd.OutOrStdout())

		entries, err := scraper.LoadSchedule(schedulePath, mode)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return fmt.Errorf("no departures match filter %s", mode)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(entries, from, days, loc, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		logger.Debug("exported calendar", zap.String("output", output), zap.Int("departures", len(entries)), zap.Int("days", days))
		fmt.Fprintf(cmd.OutOrStdout(), "✨ Экспортировано рейсов: %d → %s\n", len(entries), output)
		return nil
	},
}

func init() {
	cfg := config.Load()

	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().IntP("days", "d", cfg.ExportDays, "Number of days to cover")
	exportCmd.Flags().String("from", "", "First day to export (YYYY-MM-DD), defaults to today")
	exportCmd.Flags().String("timezone", cfg.Timezone, "Timezone of the departure times")
}
