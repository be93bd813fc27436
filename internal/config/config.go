// Package config loads the user's hatch.yml.
//
// A config file is optional. It supplies answer defaults (typically the
// author identity) and run preferences:
//
//	answers:
//	  authorName: Ada Lovelace
//	  authorEmail: ada@example.com
//	  packageType: module
//	managers: [npm, yarn]
//	install: true
//	logLevel: info
//
// Every preference can be overridden with a HATCH_ environment variable,
// e.g. HATCH_INSTALL=false.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultManagers is the package manager preference when none is
// configured.
var DefaultManagers = []string{"yarn", "npm"}

// Config is the loaded user configuration.
type Config struct {
	// Answers overrides question defaults. Keys are matched without
	// regard to letter case.
	Answers map[string]any
	// Managers lists package managers in order of preference.
	Managers []string
	// Install runs "<manager> install" before the package scripts.
	Install  bool
	LogLevel string
	// File is the config file that was read, empty if none was found.
	File string
}

// Load reads the config. An explicit path must exist; otherwise hatch.yml
// is looked up in $HOME/.config/hatch and the working directory, and a
// missing file just means defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hatch")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hatch"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HATCH")
	v.AutomaticEnv()

	v.SetDefault("managers", DefaultManagers)
	v.SetDefault("install", true)
	v.SetDefault("logLevel", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Answers:  v.GetStringMap("answers"),
		Managers: v.GetStringSlice("managers"),
		Install:  v.GetBool("install"),
		LogLevel: v.GetString("logLevel"),
		File:     v.ConfigFileUsed(),
	}
	if len(cfg.Managers) == 0 {
		return nil, fmt.Errorf("config %s: managers must list at least one package manager", cfg.File)
	}
	return cfg, nil
}
