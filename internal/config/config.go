package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when BRIDGE_CONFIG is unset. A missing file is not an error.
const DefaultFile = "bridge.yaml"

// Config holds the settings shared by every binary. Paths are defaults for
// CLI flags; a flag passed on the command line wins.
type Config struct {
	Environment    string
	LogLevel       slog.Level
	ContentRating  string
	StatePath      string
	HistoryPath    string
	PersonaPath    string
	ObjectivesPath string
	ProjectDir     string
}

// File is the YAML layer. Environment variables override it.
type File struct {
	Environment   string `yaml:"environment"`
	LogLevel      string `yaml:"log_level"`
	ContentRating string `yaml:"content_rating"`
	State         string `yaml:"state"`
	History       string `yaml:"history"`
	Persona       string `yaml:"persona"`
	Objectives    string `yaml:"objectives"`
}

func defaultFile() File {
	return File{
		Environment:   "development",
		LogLevel:      "info",
		ContentRating: "R",
		State:         "game/agent_state.json",
		History:       "game/dialogue_history.json",
		Persona:       "PERSONA.md",
		Objectives:    "game/objectives.txt",
	}
}

// Load reads the file named by BRIDGE_CONFIG (or DefaultFile) and applies
// environment overrides.
func Load() (*Config, error) {
	return LoadFile(getEnv("BRIDGE_CONFIG", DefaultFile))
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (*Config, error) {
	f := defaultFile()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return &Config{
		Environment:    getEnv("ENVIRONMENT", f.Environment),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", f.LogLevel)),
		ContentRating:  getEnv("CONTENT_RATING", f.ContentRating),
		StatePath:      f.State,
		HistoryPath:    f.History,
		PersonaPath:    f.Persona,
		ObjectivesPath: f.Objectives,
		ProjectDir:     os.Getenv("CLAUDE_PROJECT_DIR"),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
