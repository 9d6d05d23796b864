package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"notes/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
	configFormatYAML = "yaml"
)

type ConfigCommand struct {
	cli      *cli
	format   string
	defaults bool
}

func NewConfigCommand(c *cli) *ConfigCommand {
	return &ConfigCommand{cli: c}
}

type configOutput struct {
	ConfigPath string                 `json:"config_path,omitempty" toml:"config_path,omitempty" yaml:"config_path,omitempty"`
	API        effectiveAPIConfig     `json:"api" toml:"api" yaml:"api"`
	Server     effectiveServerConfig  `json:"server" toml:"server" yaml:"server"`
	Logging    effectiveLoggingConfig `json:"logging" toml:"logging" yaml:"logging"`
	UI         effectiveUIConfig      `json:"ui" toml:"ui" yaml:"ui"`
}

type effectiveAPIConfig struct {
	DefaultBase string `json:"default_base" toml:"default_base" yaml:"default_base"`
	Base        string `json:"base" toml:"base" yaml:"base"`
	URL         string `json:"url" toml:"url" yaml:"url"`
	Timeout     string `json:"timeout" toml:"timeout" yaml:"timeout"`
}

type effectiveServerConfig struct {
	Origin string `json:"origin" toml:"origin" yaml:"origin"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level" yaml:"level"`
}

type effectiveUIConfig struct {
	ToastTimeout string `json:"toast_timeout" toml:"toast_timeout" yaml:"toast_timeout"`
}

func (c *ConfigCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runWith("config", c.run),
	}
	cmd.Flags().StringVar(&c.format, "format", configFormatJSON, "output format: json|toml|yaml")
	cmd.Flags().BoolVar(&c.defaults, "default", false, "print default config values")
	return cmd
}

func (c *ConfigCommand) run(_ context.Context, _ *cobra.Command, _ []string) error {
	format, err := resolveConfigFormat(c.format)
	if err != nil {
		return err
	}
	var s settings
	if c.defaults {
		s = defaultSettings()
	} else {
		s, err = c.cli.loadSettings()
		if err != nil {
			return err
		}
	}
	return writeConfigOutput(c.cli.stdout, format, buildConfigOutput(s))
}

func defaultSettings() settings {
	cfg := config.DefaultConfig()
	base := config.NewBaseResolver(config.EnvConfig{}, cfg.DefaultAPIBase()).Resolve()
	return settings{
		Config:  cfg,
		APIBase: base,
		APIURL:  config.ResolveURL(base, cfg.ServerOrigin()),
	}
}

func buildConfigOutput(s settings) configOutput {
	return configOutput{
		ConfigPath: s.ConfigPath,
		API: effectiveAPIConfig{
			DefaultBase: s.Config.DefaultAPIBase(),
			Base:        s.APIBase,
			URL:         s.APIURL,
			Timeout:     s.Config.RequestTimeout().String(),
		},
		Server: effectiveServerConfig{
			Origin: s.Config.ServerOrigin(),
		},
		Logging: effectiveLoggingConfig{
			Level: s.Config.LogLevel(),
		},
		UI: effectiveUIConfig{
			ToastTimeout: s.Config.ToastTimeout().String(),
		},
	}
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	case configFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	case configFormatYAML, "yml":
		return configFormatYAML, nil
	default:
		return "", errors.New("invalid format: must be json, toml or yaml")
	}
}
