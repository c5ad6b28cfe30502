package tui

import (
	"fmt"
	"io"
	"strings"

	"elektrichka/pkg/scraper"

	"github.com/charmbracelet/lipgloss"
)

var separator = strings.Repeat("=", 60)

// RenderSchedule prints the numbered departure listing followed by a total.
// Styling is only applied when w is a color-capable terminal.
func RenderSchedule(w io.Writer, mode scraper.Mode, entries []scraper.Entry) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Foreground(accentColor()).Bold(true)
	timeStyle := r.NewStyle().Bold(true)
	daysStyle := r.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	errStyle := r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	okStyle := r.NewStyle().Foreground(lipgloss.Color("42"))

	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render("🗓 Расписание электричек"))
	fmt.Fprintf(&b, "🔍 Фильтр: %s\n", mode)
	fmt.Fprintln(&b, separator)

	if len(entries) == 0 {
		fmt.Fprintln(&b, errStyle.Render("❌ Рейсы не найдены."))
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. 🕒 %s | 🚆 %s | 📅 %s\n",
			i+1,
			timeStyle.Render(e.Time),
			e.Route,
			daysStyle.Render("["+e.Category.String()+"]"),
		)
	}

	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, okStyle.Render(fmt.Sprintf("✅ Всего рейсов: %d", len(entries))))

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderRoutes prints the departures grouped by route.
func RenderRoutes(w io.Writer, mode scraper.Mode, routes []scraper.RouteSummary) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Foreground(accentColor()).Bold(true)
	routeStyle := r.NewStyle().Bold(true)
	daysStyle := r.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render("🗓 Рейсы по направлениям"))
	fmt.Fprintf(&b, "🔍 Фильтр: %s\n", mode)

	if len(routes) == 0 {
		fmt.Fprintln(&b, separator)
		fmt.Fprintln(&b, r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("❌ Рейсы не найдены."))
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, route := range routes {
		fmt.Fprintf(&b, "\n🚆 %s\n", routeStyle.Render(route.Route))
		for _, e := range route.Departures {
			fmt.Fprintf(&b, "  • [%s] %s\n", e.Time, daysStyle.Render(e.Category.String()))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
