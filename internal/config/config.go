package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Tracing TracingConfig `mapstructure:"tracing" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// TracingConfig controls where spans are exported. Exporter "none" disables
// export entirely, "stdout" prints spans to the console, "otlp" sends them to
// the collector at Endpoint over the configured protocol.
type TracingConfig struct {
	Exporter string `mapstructure:"exporter" validate:"required,oneof=none stdout otlp"`
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Exporter otlp"`
	Protocol string `mapstructure:"protocol" validate:"required,oneof=grpc http"`
	Insecure bool   `mapstructure:"insecure"`
}
