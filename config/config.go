// Package config loads golox's optional settings file. The teacher's
// go.mod carries gopkg.in/yaml.v3 as an indirect dependency it never
// actually imports; golox activates it here to back the handful of REPL
// cosmetics the teacher's repl.Repl constructor otherwise hardcodes
// (banner text, prompt string, color on/off, history file path).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL/CLI settings that can be overridden from a
// .golox.yaml file. Defaults match the teacher's hardcoded repl.Repl
// values when no file is found.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	ShowBanner  bool   `yaml:"show_banner"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings golox uses when no config file is present.
func Default() *Config {
	home, _ := os.UserHomeDir()
	history := ".golox_history"
	if home != "" {
		history = filepath.Join(home, ".golox_history")
	}
	return &Config{
		Prompt:      "golox >>> ",
		Banner:      "golox — a tree-walking Lox interpreter",
		ShowBanner:  true,
		Color:       true,
		HistoryFile: history,
	}
}

// Load reads a config file at path, or, if path is empty, probes
// "./.golox.yaml" and then "$HOME/.golox.yaml". When probing finds no
// file, that is not an error: Load returns Default() unchanged. An
// explicit path that cannot be read is an error, and so is a
// present-but-malformed file.
func Load(path string) (*Config, error) {
	cfg := Default()

	candidate := path
	if candidate == "" {
		if _, err := os.Stat(".golox.yaml"); err == nil {
			candidate = ".golox.yaml"
		} else if home, err := os.UserHomeDir(); err == nil {
			homePath := filepath.Join(home, ".golox.yaml")
			if _, err := os.Stat(homePath); err == nil {
				candidate = homePath
			}
		}
	}
	if candidate == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(candidate)
	if err != nil {
		if path == "" {
			// An auto-probed candidate disappearing between Stat and
			// ReadFile is not user error; fall back to defaults.
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
