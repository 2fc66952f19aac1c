package update

import (
	"testing"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/config"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if _, ok := opts.Clock.(model.RealClock); !ok {
		t.Fatalf("expected real clock default, got %T", opts.Clock)
	}
	if _, ok := opts.IDs.(model.UUIDGenerator); !ok {
		t.Fatalf("expected uuid ids default, got %T", opts.IDs)
	}
	if _, ok := opts.Notifier.(NoopDesktopNotifier); !ok {
		t.Fatalf("expected noop notifier default, got %T", opts.Notifier)
	}
	if opts.TickInterval != time.Second || opts.Logger == nil || opts.ExportDir != "." {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.DesktopNotifications = true
	cfg.TickInterval = 500 * time.Millisecond

	opts := OptionsFromConfig(cfg, nil, nil)
	if !opts.DesktopNotifications {
		t.Fatal("expected desktop notifications from config")
	}
	if _, ok := opts.Notifier.(ExecDesktopNotifier); !ok {
		t.Fatalf("expected exec notifier, got %T", opts.Notifier)
	}
	if opts.TickInterval != 500*time.Millisecond {
		t.Fatalf("unexpected tick interval: %s", opts.TickInterval)
	}

	if got := OptionsFromConfig(nil, nil, nil); got.DesktopNotifications {
		t.Fatalf("expected zero options for nil config, got %+v", got)
	}
}
