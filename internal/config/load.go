package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Load reads configuration from environment variables with the TASKAPI_
// prefix, applies defaults for anything unset, and validates the result.
// Environment keys map onto config paths with underscores, e.g.
// TASKAPI_SERVER_PORT -> server.port.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults; every key needs one so AutomaticEnv can see it.
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.protocol", "grpc")
	v.SetDefault("tracing.insecure", false)

	v.SetEnvPrefix("TASKAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
