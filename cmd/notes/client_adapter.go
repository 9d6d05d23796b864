package main

import (
	"context"
	"strings"

	"notes/internal/app"
	"notes/internal/client"
	"notes/internal/config"
	"notes/internal/logging"
)

// settings is everything a command needs to know about its environment,
// resolved once per invocation.
type settings struct {
	Env        config.EnvConfig
	Config     config.Config
	ConfigPath string
	APIBase    string
	APIURL     string
}

type commandClient interface {
	app.NotesAPI
}

type clientFactory func(s settings, logger logging.Logger) commandClient

type uiRunner func(ctx context.Context, opts app.Options) error

func loadSettings() (settings, error) {
	env, err := config.ReadEnv()
	if err != nil {
		return settings{}, err
	}
	return settingsFromEnv(env)
}

func settingsFromEnv(env config.EnvConfig) (settings, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return settings{}, err
	}
	path := strings.TrimSpace(env.ConfigPath)
	if path == "" {
		path, err = config.ConfigPath()
		if err != nil {
			return settings{}, err
		}
	}
	base := config.NewBaseResolver(env, cfg.DefaultAPIBase()).Resolve()
	return settings{
		Env:        env,
		Config:     cfg,
		ConfigPath: path,
		APIBase:    base,
		APIURL:     config.ResolveURL(base, cfg.ServerOrigin()),
	}, nil
}

func newNotesClient(s settings, logger logging.Logger) commandClient {
	return client.New(
		s.APIURL,
		client.WithTimeout(s.Config.RequestTimeout()),
		client.WithLogger(logger),
	)
}
