package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

type addOptions struct {
	Start      string
	Color      string
	Format     string
	Widget     bool
	Background string
}

func newAddCommand(gopts *globalOptions) *cobra.Command {
	var opts addOptions
	cmd := &cobra.Command{
		Use:   "add [flags] NAME",
		Short: "Start a new counter",
		Long: `
The "add" command creates a counter at the top of the list. Without --start
the counter starts now. Start times without a zone are read in local time.
`,
		DisableAutoGenTag: true,
		Args:              cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), opts, gopts, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Start, "start", "", "start `time` (2006-01-02 15:04)")
	f.StringVar(&opts.Color, "color", string(model.ColorBlue), "tile `color`")
	f.StringVar(&opts.Format, "format", string(elapsed.FormatFull), "display `format` (full, days, hm, total-hours)")
	f.BoolVar(&opts.Widget, "widget", false, "pin the counter to the home screen")
	f.StringVar(&opts.Background, "background", "", "background image `url`")
	return cmd
}

func (o addOptions) input(name string, clock model.Clock) (model.NewCounterInput, error) {
	color, err := model.ParseColor(o.Color)
	if err != nil {
		return model.NewCounterInput{}, err
	}
	format, err := elapsed.ParseDisplayFormat(o.Format)
	if err != nil {
		return model.NewCounterInput{}, err
	}
	in := model.NewCounterInput{
		Name:            name,
		Color:           color,
		DisplayFormat:   format,
		IsWidget:        o.Widget,
		BackgroundImage: o.Background,
	}
	if o.Start != "" {
		start, err := model.ParseInstant(o.Start, clock.Now().Location())
		if err != nil {
			return model.NewCounterInput{}, err
		}
		in.StartAt = start
	}
	return in, nil
}

func runAdd(ctx context.Context, opts addOptions, gopts *globalOptions, name string, out io.Writer) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	in, err := opts.input(name, env.clock)
	if err != nil {
		return err
	}
	c, err := model.NewCounter(in, env.clock, env.ids)
	if err != nil {
		return err
	}

	counters, err := env.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	if err := env.store.Save(ctx, model.Prepend(counters, c)); err != nil {
		return fmt.Errorf("save counters: %w", err)
	}
	env.logger.Info("counter added", "counter_id", c.ID, "name", c.Name)

	_, err = fmt.Fprintf(out, "added %s (%s)\n", c.Name, c.ID)
	return err
}
