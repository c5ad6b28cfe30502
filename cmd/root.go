package cmd

import (
	"fmt"
	"io"
	"os"

	"elektrichka/pkg/config"
	"elektrichka/pkg/scraper"
	"elektrichka/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	schedulePath string
	noSample     bool
	verbose      bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "elektrichka [all|weekdays|daily]",
	Short: "List commuter train departures from a saved station page",
	Long: `elektrichka reads a saved station timetable page, keeps the departures
matching the requested day type and prints them ordered by time.

Filters (case-insensitive):
  all                    every departure (default, also used for unknown values)
  weekdays | будни       trains running on working days only
  daily    | ежедневно   trains running every day

The subcommand names (export, routes, interactive, completion, help) are
matched as commands before any filter, so they never fall back to "all".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logCfg := zap.NewProductionConfig()
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = logCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		scraper.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := modeFromArgs(args)
		prepareSchedule(cmd.OutOrStdout())

		entries, err := scraper.LoadSchedule(schedulePath, mode)
		if err != nil {
			return err
		}

		return tui.RenderSchedule(cmd.OutOrStdout(), mode, entries)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func modeFromArgs(args []string) scraper.Mode {
	if len(args) == 0 {
		return scraper.All
	}
	return scraper.ParseMode(args[0])
}

// prepareSchedule writes the demo page when the schedule file is missing.
// Failures are only reported here; loading the file reports the real error.
func prepareSchedule(out io.Writer) {
	if noSample {
		return
	}

	created, err := scraper.EnsureDocument(schedulePath)
	if err != nil {
		logger.Warn("could not create sample schedule", zap.String("path", schedulePath), zap.Error(err))
		return
	}
	if created {
		fmt.Fprintf(out, "Создан тестовый файл с расписанием: %s\n", schedulePath)
	}
}

func init() {
	cfg := config.Load()

	rootCmd.PersistentFlags().StringVarP(&schedulePath, "file", "f", cfg.SchedulePath, "Saved station timetable page")
	rootCmd.PersistentFlags().BoolVar(&noSample, "no-sample", !cfg.WriteSample, "Do not create a demo page when the file is missing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
