// Package config loads the optional .pinkrc.toml file the REPL reads its
// defaults from, using github.com/BurntSushi/toml for host configuration
// files.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// REPL holds the user-configurable REPL defaults.
type REPL struct {
	Debug       bool   `toml:"debug"`
	HistoryPath string `toml:"history_path"`
	HistorySize int    `toml:"history_size"`
	StepCap     int    `toml:"step_cap"`
}

// Default returns the built-in REPL defaults used when no rc file exists.
func Default() REPL {
	return REPL{
		Debug:       false,
		HistoryPath: ".pink-repl-history",
		HistorySize: 500,
		StepCap:     0, // 0 means no cap
	}
}

// Load reads path (typically ".pinkrc.toml" in the current directory) on
// top of Default(), leaving defaults in place for any field the file
// doesn't set. A missing file is not an error.
func Load(path string) (REPL, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
