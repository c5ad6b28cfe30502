package scraper

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

type sampleRow struct {
	Time        string
	Destination string
	Days        DayCategory
}

// Departures from Moscow Yaroslavsky used for the demo page
var sampleRows = []sampleRow{
	{"05:45", "Щёлково", Weekdays},
	{"06:15", "Александров", Daily},
	{"06:45", "Пушкино", Weekdays},
	{"07:20", "Мытищи", Daily},
	{"07:45", "Красноармейск", Weekdays},
	{"08:15", "Сергиев Посад", Daily},
	{"08:45", "Болшево", Weekdays},
	{"09:20", "Фрязино", Daily},
	{"17:30", "Щёлково", Weekdays},
	{"18:15", "Александров", Daily},
	{"19:00", "Пушкино", Weekdays},
	{"19:45", "Мытищи", Daily},
	{"20:30", "Красноармейск", Weekdays},
	{"21:15", "Сергиев Посад", Daily},
	{"22:00", "Болшево", Weekdays},
	{"22:45", "Фрязино", Daily},
	{"23:30", "Щёлково", Daily},
}

var sampleTemplate = template.Must(template.New("schedule").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Расписание электричек {{.Station}}</title>
    <style>
        .schedule { font-family: Arial, sans-serif; margin: 20px; }
        .train-item { border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px; background: #f9f9f9; }
        .time { font-weight: bold; color: #2c3e50; font-size: 18px; margin-right: 20px; }
        .route { color: #34495e; margin-right: 20px; }
        .days { color: #7f8c8d; font-style: italic; }
    </style>
</head>
<body>
    <div class="schedule">
        <h1>Расписание электричек</h1>
        <h2>Станция: {{.Station}}</h2>
{{range .Rows}}
        <div class="train-item">
            <span class="time">{{.Time}}</span>
            <span class="route">{{$.Station}} → {{.Destination}}</span>
            <span class="days">{{.Days}}</span>
        </div>
{{- end}}
    </div>
</body>
</html>
`))

// SampleDocument renders the demo station page.
func SampleDocument() string {
	var sb strings.Builder
	data := struct {
		Station string
		Rows    []sampleRow
	}{DefaultRoute, sampleRows}

	// The template and its data are fixed, so execution cannot fail.
	if err := sampleTemplate.Execute(&sb, data); err != nil {
		panic(err)
	}
	return sb.String()
}

// EnsureDocument writes the demo page to path when no file exists there yet.
// It reports whether a new file was created.
func EnsureDocument(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("could not check schedule file: %w", err)
	}

	if err := os.WriteFile(path, []byte(SampleDocument()), 0644); err != nil {
		return false, fmt.Errorf("could not write sample schedule: %w", err)
	}

	logger.Info("wrote sample schedule", zap.String("path", path), zap.Int("rows", len(sampleRows)))
	return true, nil
}
