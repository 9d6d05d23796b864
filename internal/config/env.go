package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvAPIBase    = "NOTES_API_BASE"
	EnvBackendURL = "NOTES_BACKEND_URL"
	EnvLogLevel   = "NOTES_LOG_LEVEL"
	EnvConfigPath = "NOTES_CONFIG"
)

// EnvConfig holds the process environment the client reads once at start.
type EnvConfig struct {
	APIBase    string `env:"NOTES_API_BASE"`
	BackendURL string `env:"NOTES_BACKEND_URL"`
	LogLevel   string `env:"NOTES_LOG_LEVEL"`
	ConfigPath string `env:"NOTES_CONFIG"`
}

func ReadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// EnvFromLookup builds an EnvConfig from an arbitrary lookup, e.g. a map in
// tests.
func EnvFromLookup(lookup func(string) (string, bool)) EnvConfig {
	get := func(key string) string {
		if lookup == nil {
			return ""
		}
		value, _ := lookup(key)
		return value
	}
	return EnvConfig{
		APIBase:    get(EnvAPIBase),
		BackendURL: get(EnvBackendURL),
		LogLevel:   get(EnvLogLevel),
		ConfigPath: get(EnvConfigPath),
	}
}
