package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

type showOptions struct {
	Format string
}

func newShowCommand(gopts *globalOptions) *cobra.Command {
	var opts showOptions
	cmd := &cobra.Command{
		Use:               "show [flags] ID|NAME",
		Short:             "Print the elapsed time of one counter",
		DisableAutoGenTag: true,
		Args:              cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), opts, gopts, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "", "override the counter's display `format`")
	return cmd
}

func runShow(ctx context.Context, opts showOptions, gopts *globalOptions, ref string, out io.Writer) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	counters, err := env.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	c, ok := model.Find(counters, ref)
	if !ok {
		return fmt.Errorf("counter %q: %w", ref, storage.ErrNotFound)
	}
	if opts.Format != "" {
		f, err := elapsed.ParseDisplayFormat(opts.Format)
		if err != nil {
			return err
		}
		c.DisplayFormat = f
	}

	now := env.clock.Now()
	_, err = fmt.Fprintf(out, "%s: %s\n", c.Name, c.Elapsed(now))
	return err
}
