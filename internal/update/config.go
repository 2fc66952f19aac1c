package update

import (
	"io"
	"log/slog"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/config"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/scheduler"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

// Options wires the UI to its collaborators. Zero values fall back to real
// clocks, UUIDs, a discarding logger and a one second tick.
type Options struct {
	Store                storage.Store
	Clock                model.Clock
	IDs                  model.IDGenerator
	Scheduler            *scheduler.Engine
	Notifier             DesktopNotifier
	DesktopNotifications bool
	TickInterval         time.Duration
	Logger               *slog.Logger
	ExportDir            string
}

// OptionsFromConfig carries the runtime settings of cfg into Options.
func OptionsFromConfig(cfg *config.Config, store storage.Store, engine *scheduler.Engine) Options {
	opts := Options{
		Store:     store,
		Scheduler: engine,
	}
	if cfg == nil {
		return opts
	}
	opts.DesktopNotifications = cfg.DesktopNotifications
	opts.TickInterval = cfg.TickInterval
	if cfg.DesktopNotifications {
		opts.Notifier = ExecDesktopNotifier{}
	}
	return opts
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = model.RealClock{}
	}
	if o.IDs == nil {
		o.IDs = model.UUIDGenerator{}
	}
	if o.Notifier == nil {
		o.Notifier = NoopDesktopNotifier{}
	}
	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.ExportDir == "" {
		o.ExportDir = "."
	}
	return o
}
