// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
//
// Only diagnostic logging is configurable. The counted patterns and the
// standard output format are fixed.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by New.
const (
	EnvLogLevel = "TICKETCOUNT_LOG_LEVEL"
	EnvLogColor = "TICKETCOUNT_LOG_COLOR"
	EnvLogTime  = "TICKETCOUNT_LOG_TIME"
)

// Color modes for the stderr log handler.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds all application configuration.
type Settings struct {
	Log LogConfig
}

// LogConfig holds diagnostic logging configuration.
type LogConfig struct {
	Level      slog.Level
	Color      string
	TimeFormat string
}

// Default returns the settings used when the environment sets nothing.
func Default() Settings {
	return Settings{
		Log: LogConfig{
			Level:      slog.LevelWarn,
			Color:      ColorAuto,
			TimeFormat: "15:04:05.000",
		},
	}
}

// New creates settings, loading values from environment variables.
// Returns an error if environment variables contain invalid values.
func New() (Settings, error) {
	s := Default()

	level, err := getEnvLevel(EnvLogLevel, s.Log.Level)
	if err != nil {
		return Settings{}, err
	}

	color, err := getEnvChoice(EnvLogColor, s.Log.Color, ColorAuto, ColorAlways, ColorNever)
	if err != nil {
		return Settings{}, err
	}

	s.Log.Level = level
	s.Log.Color = color
	s.Log.TimeFormat = getEnvString(EnvLogTime, s.Log.TimeFormat)

	return s, nil
}

// Environment variable helpers with proper error handling

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvLevel(key string, defaultVal slog.Level) (slog.Level, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(val)); err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return level, nil
}

func getEnvChoice(key, defaultVal string, choices ...string) (string, error) {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if val == "" {
		return defaultVal, nil
	}
	for _, c := range choices {
		if val == c {
			return val, nil
		}
	}
	return "", fmt.Errorf("invalid value for %s: %q (want one of %s)", key, val, strings.Join(choices, ", "))
}
