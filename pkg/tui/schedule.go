package tui

import (
	"bytes"
	"fmt"
	"io"

	"elektrichka/pkg/scraper"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunTUI asks for a filter and then writes the listing for the schedule at path to w
func RunTUI(path string, w io.Writer) error {
	var mode scraper.Mode

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[scraper.Mode]().
				Title("Какие рейсы показать?").
				Options(
					huh.NewOption("🚆 Все рейсы", scraper.All),
					huh.NewOption("💼 Только по будням", scraper.WeekdaysOnly),
					huh.NewOption("📅 Ежедневные", scraper.DailyOnly),
				).
				Value(&mode),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	// Rendered off-screen so the spinner never interleaves with the listing
	var out bytes.Buffer
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Parsing %s...", path)).
		Action(func() {
			err = showSchedule(&out, path, mode)
		}).
		Run()

	if err != nil {
		return err
	}

	_, err = io.Copy(w, &out)
	return err
}

func showSchedule(w io.Writer, path string, mode scraper.Mode) error {
	entries, err := scraper.LoadSchedule(path, mode)
	if err != nil {
		return err
	}
	return RenderSchedule(w, mode, entries)
}
