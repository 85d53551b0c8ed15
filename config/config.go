// Package config reads process-wide settings from the environment. All
// variables use the REVERSI_ prefix, e.g. REVERSI_KERNEL=portable.
package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the settings consumed by the kernel dispatcher and the
// command-line tools.
type Config struct {
	// Kernel overrides the CPU-probed kernel profile ("gather" or
	// "portable"). Empty means probe.
	Kernel string
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string
}

// FromEnv builds a Config from the environment.
func FromEnv() *Config {
	v := viper.New()
	v.SetEnvPrefix("reversi")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("kernel", "")
	v.SetDefault("log-level", "info")
	return &Config{
		Kernel:   strings.ToLower(v.GetString("kernel")),
		LogLevel: strings.ToLower(v.GetString("log-level")),
	}
}

// ZerologLevel maps LogLevel onto a zerolog level, defaulting to info.
func (c *Config) ZerologLevel() zerolog.Level {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return lvl
	}
	return zerolog.InfoLevel
}
