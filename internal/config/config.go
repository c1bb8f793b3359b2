// Package config defines the top-level CLI structure parsed by kong.
package config

import "github.com/robomsg/msggen/internal/cmd"

// LogConfig holds the global logging flags.
type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"MSGGEN_LOG_LEVEL"`
	File  string `help:"Optional log file path" env:"MSGGEN_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log        LogConfig         `embed:"" prefix:"log."`
	ConfigFile string            `name:"config" help:"Path to a config file" env:"MSGGEN_CONFIG"`
	Generate   cmd.Generate      `cmd:"" help:"Generate C++ source from .msg message definitions"`
	Config     cmd.ConfigCommand `cmd:"" help:"Configuration utilities"`
	Version    cmd.VersionCmd    `cmd:"" help:"Print the msggen version"`
}
