package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without loading user/project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.Data.AxesPath != "data/axis_definitions.json" {
		t.Errorf("expected default axes path, got %q", cfg.Data.AxesPath)
	}
	if cfg.Data.ReadingsPath != "data/readings_data.json" {
		t.Errorf("expected default readings path, got %q", cfg.Data.ReadingsPath)
	}
	if cfg.Data.Watch {
		t.Error("expected dataset watch to default to off")
	}
	if cfg.Log.JSON {
		t.Error("expected log.json to default to false")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Host: "0.0.0.0", Port: 8091, RequestsPerSecond: 20, RequestBurst: 40},
			Data:   DataConfig{AxesPath: "a.json", ReadingsPath: "r.json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero rate", func(c *Config) { c.Server.RequestsPerSecond = 0 }, true},
		{"burst below rate", func(c *Config) { c.Server.RequestBurst = 1 }, true},
		{"missing axes path", func(c *Config) { c.Data.AxesPath = "" }, true},
		{"missing readings path", func(c *Config) { c.Data.ReadingsPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := Config{Server: ServerConfig{Host: "127.0.0.1", Port: 9000}}
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
