package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/sandeepkv93/chronotrack/internal/config"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/observability"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

// globalOptions are the persistent flags. Empty values leave the environment
// configuration in place.
type globalOptions struct {
	Driver  string
	Path    string
	LogFile string
}

func (o *globalOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Driver, "driver", "", "storage `driver` (sqlite or json)")
	f.StringVar(&o.Path, "db", "", "`path` of the counter store")
	f.StringVar(&o.LogFile, "log-file", "", "write logs to `file`")
}

// environment is everything a command needs once configuration is resolved.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	store  storage.Store
	clock  model.Clock
	ids    model.IDGenerator
	closer []func() error
}

func (o *globalOptions) apply(cfg *config.Config) error {
	if o.Driver != "" {
		if cfg.Storage.Path == config.DefaultPath(cfg.Storage.Driver) {
			cfg.Storage.Path = config.DefaultPath(o.Driver)
		}
		cfg.Storage.Driver = o.Driver
	}
	if o.Path != "" {
		cfg.Storage.Path = o.Path
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	return cfg.Validate()
}

func openEnvironment(o *globalOptions) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := o.apply(cfg); err != nil {
		return nil, err
	}

	logger, closeLog, err := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		File:        cfg.Log.File,
		ServiceName: "chronotrack",
	})
	if err != nil {
		return nil, err
	}

	store, closeStore, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open %s store %s: %w", cfg.Storage.Driver, cfg.Storage.Path, err)
	}
	logger.Debug("store opened",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("path", cfg.Storage.Path),
	)

	return &environment{
		cfg:    cfg,
		logger: logger,
		store:  store,
		clock:  model.RealClock{},
		ids:    model.UUIDGenerator{},
		closer: []func() error{closeStore, closeLog},
	}, nil
}

func (e *environment) Close() error {
	var errs []error
	for _, fn := range e.closer {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func joinClose(err error, env *environment) error {
	return errors.Join(err, env.Close())
}
