package config

import (
	"fmt"
	"strings"
)

// EnvPrefix is prepended to every environment key, e.g. DEVCONSOLE_TOGGLE_KEY.
const EnvPrefix = "DEVCONSOLE_"

// DefaultConfigPath is read when no explicit path is given. A missing file is
// not an error.
const DefaultConfigPath = "~/.devconsole/config.yaml"

// Terminal color modes for the gocui host.
const (
	OutputModeTrue   = "true"
	OutputMode256    = "256"
	OutputModeNormal = "normal"
)

// Config holds the console settings shared by the CLI and the terminal host.
type Config struct {
	ToggleKey   string   `yaml:"toggle_key" env:"TOGGLE_KEY"`
	SubmitKey   string   `yaml:"submit_key" env:"SUBMIT_KEY"`
	ClearHotkey string   `yaml:"clear_hotkey" env:"CLEAR_HOTKEY"`
	StartOpen   bool     `yaml:"start_open" env:"START_OPEN"`
	HistorySize int      `yaml:"history_size" env:"HISTORY_SIZE"`
	Banner      []string `yaml:"banner" env:"BANNER" envSeparator:"|"`
	OutputMode  string   `yaml:"output_mode" env:"OUTPUT_MODE"`
	DebugFile   string   `yaml:"debug_file" env:"DEBUG_FILE"`
	DebugLevel  string   `yaml:"debug_level" env:"DEBUG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ToggleKey:   "`",
		SubmitKey:   "Enter",
		ClearHotkey: "F1",
		StartOpen:   false,
		HistorySize: 100,
		Banner: []string{
			"DEBUG CONSOLE",
			"------------------------",
			"type 'help' to view available commands",
		},
		OutputMode: OutputModeTrue,
		DebugLevel: "info",
	}
}

// Validate checks the values that cannot be corrected silently.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ToggleKey) == "" {
		return fmt.Errorf("toggle_key must not be empty")
	}
	if strings.TrimSpace(c.SubmitKey) == "" {
		return fmt.Errorf("submit_key must not be empty")
	}
	if strings.EqualFold(strings.TrimSpace(c.ToggleKey), strings.TrimSpace(c.SubmitKey)) {
		return fmt.Errorf("toggle_key and submit_key must differ, both are %q", c.ToggleKey)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", c.HistorySize)
	}
	switch c.OutputMode {
	case OutputModeTrue, OutputMode256, OutputModeNormal:
	default:
		return fmt.Errorf("unknown output_mode %q (want true, 256 or normal)", c.OutputMode)
	}
	return nil
}
