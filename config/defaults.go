package config

import "github.com/spf13/viper"

// DefaultPort is the default instviz server port
const DefaultPort = 8091

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.requests_per_second", 20)
	v.SetDefault("server.request_burst", 40)

	// Data defaults
	v.SetDefault("data.axes_path", "data/axis_definitions.json")
	v.SetDefault("data.readings_path", "data/readings_data.json")
	v.SetDefault("data.watch", false)

	// Log defaults
	v.SetDefault("log.json", false)
}
