package config

import (
	"os"
	"strconv"
)

// Config holds the runtime settings for elektrichka
type Config struct {
	// Schedule page read by every command
	SchedulePath string

	// Write the demo page when SchedulePath does not exist
	WriteSample bool

	// Timezone used for calendar export
	Timezone string
	// Number of days covered by calendar export
	ExportDays int

	// lipgloss color used for headers and forms
	AccentColor string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		SchedulePath: getEnv("ELEKTRICHKA_FILE", "schedule.html"),
		WriteSample:  getEnvBool("ELEKTRICHKA_SAMPLE", true),
		Timezone:     getEnv("ELEKTRICHKA_TIMEZONE", "Europe/Moscow"),
		ExportDays:   getEnvInt("ELEKTRICHKA_EXPORT_DAYS", 7),
		AccentColor:  getEnv("ELEKTRICHKA_ACCENT", "99"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
