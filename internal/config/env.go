// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the STATLINE_ prefix) to the CLI flag
// name it corresponds to and a function that applies the env value. An empty
// flag name means the setting has no command-line form.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// Invalid values are ignored and the current setting is kept.
var envOverrides = []envOverride{
	{"INTERVAL", "interval", func(c *AppConfig, v string) {
		if d, err := ParseInterval(v); err == nil {
			c.Interval = d
		}
	}},
	{"WITH_ICONS", "with-icons", func(c *AppConfig, v string) {
		c.ShowIcons = parseBoolEnv(v, c.ShowIcons)
	}},
	{"NO_FIX_LENGTH", "no-fix-length", func(c *AppConfig, v string) {
		c.FixedWidth = !parseBoolEnv(v, !c.FixedWidth)
	}},
	{"LOG_LEVEL", "", func(c *AppConfig, v string) {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with STATLINE_):
//   - INTERVAL, WITH_ICONS, NO_FIX_LENGTH, LOG_LEVEL
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if o.flag != "" && isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
