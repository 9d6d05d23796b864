package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultServerOrigin   = "http://127.0.0.1:8080"
	defaultRequestTimeout = 10 * time.Second
	defaultToastTimeout   = 3500 * time.Millisecond
	defaultLogLevel       = "info"
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type APIConfig struct {
	DefaultBase string `toml:"default_base"`
	Timeout     string `toml:"timeout"`
}

type ServerConfig struct {
	Origin string `toml:"origin"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	ToastTimeout string `toml:"toast_timeout"`
}

func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			DefaultBase: DefaultAPIBase,
			Timeout:     defaultRequestTimeout.String(),
		},
		Server: ServerConfig{
			Origin: defaultServerOrigin,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		UI: UIConfig{
			ToastTimeout: defaultToastTimeout.String(),
		},
	}
}

// Load reads the config file named by NOTES_CONFIG, or the default config
// path, on top of the defaults. A missing file is not an error.
func Load(env EnvConfig) (Config, error) {
	path := strings.TrimSpace(env.ConfigPath)
	if path == "" {
		defaultPath, err := ConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}
	cfg, err := loadConfigFromPath(path)
	if err != nil {
		return Config{}, err
	}
	if level := strings.TrimSpace(env.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	return cfg, nil
}

func (c Config) DefaultAPIBase() string {
	base := strings.TrimSpace(c.API.DefaultBase)
	if base == "" {
		return DefaultAPIBase
	}
	return base
}

func (c Config) RequestTimeout() time.Duration {
	return parseDurationOr(c.API.Timeout, defaultRequestTimeout)
}

func (c Config) ServerOrigin() string {
	origin := strings.TrimRight(strings.TrimSpace(c.Server.Origin), "/")
	if origin == "" {
		return defaultServerOrigin
	}
	return origin
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) ToastTimeout() time.Duration {
	return parseDurationOr(c.UI.ToastTimeout, defaultToastTimeout)
}

func loadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func parseDurationOr(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
