package config

import (
	"fmt"
	"strings"
)

var Version = "0.1.0"

type LogConfig struct {
	Level  string
	Format string
	Output string
}

type ConfigType struct {
	LogConfig LogConfig
}

var Config *ConfigType

// InitConfig builds the runtime configuration from command line values.
// plog reads no configuration file and no environment variables.
func InitConfig(loglevel string) error {
	Config = &ConfigType{
		LogConfig: LogConfig{
			Level: strings.ToLower(strings.TrimSpace(loglevel)),
		},
	}

	switch Config.LogConfig.Level {
	case "":
		Config.LogConfig.Level = "warn"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid loglevel %q (use debug, info, warn, error)", loglevel)
	}

	if Config.LogConfig.Format == "" {
		Config.LogConfig.Format = "console"
	}

	// stdout carries the report
	if len(Config.LogConfig.Output) == 0 {
		Config.LogConfig.Output = "stderr"
	}

	return nil
}
