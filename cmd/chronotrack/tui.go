package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sandeepkv93/chronotrack/internal/scheduler"
	"github.com/sandeepkv93/chronotrack/internal/update"
)

// runTUI runs the program next to the milestone engine. Cancelling ctx stops
// both.
func runTUI(ctx context.Context, cmd *cobra.Command, gopts *globalOptions) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	engine := scheduler.NewEngine(env.cfg.MilestoneBuffer)
	engine.Start()

	opts := update.OptionsFromConfig(env.cfg, env.store, engine)
	opts.Logger = env.logger
	opts.Clock = env.clock
	opts.IDs = env.ids

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(update.NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		engine.Stop()
		if dropped := engine.Dropped(); dropped > 0 {
			env.logger.Warn("milestones dropped during session", slog.Uint64("dropped", dropped))
		}
		return nil
	})

	env.logger.Info("tui started", slog.String("driver", env.cfg.Storage.Driver))
	err = g.Wait()
	env.logger.Info("tui stopped")
	return err
}
