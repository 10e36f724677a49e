package config

import "github.com/sse-mib/instviz/errors"

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Newf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.RequestsPerSecond <= 0 {
		return errors.Newf("server.requests_per_second must be positive, got %d", c.Server.RequestsPerSecond)
	}
	if c.Server.RequestBurst < c.Server.RequestsPerSecond {
		return errors.Newf("server.request_burst (%d) must be >= server.requests_per_second (%d)",
			c.Server.RequestBurst, c.Server.RequestsPerSecond)
	}
	if c.Data.AxesPath == "" {
		return errors.New("data.axes_path must not be empty")
	}
	if c.Data.ReadingsPath == "" {
		return errors.New("data.readings_path must not be empty")
	}
	return nil
}
