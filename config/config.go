// Package config loads instviz configuration with Viper.
//
// Precedence (highest first): INSTVIZ_* environment variables, project
// instviz.toml, user ~/.instviz/instviz.toml, built-in defaults.
package config

import "fmt"

// Config is the root instviz configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig configures the instviz web server
type ServerConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"` // per-client render request limit
	RequestBurst      int    `mapstructure:"request_burst"`
}

// DataConfig locates the axis and reading datasets
type DataConfig struct {
	AxesPath     string `mapstructure:"axes_path"`
	ReadingsPath string `mapstructure:"readings_path"`
	Watch        bool   `mapstructure:"watch"` // reload datasets on file change
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
