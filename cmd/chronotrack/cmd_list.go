package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/chronotrack/internal/model"
)

type listOptions struct {
	WidgetsOnly bool
}

func newListCommand(gopts *globalOptions) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:               "list [flags]",
		Short:             "List counters with their elapsed time",
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), opts, gopts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&opts.WidgetsOnly, "widgets", false, "only list counters pinned to the home screen")
	return cmd
}

func runList(ctx context.Context, opts listOptions, gopts *globalOptions, out io.Writer) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	counters, err := env.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	if opts.WidgetsOnly {
		counters = model.Widgets(counters)
	}
	if len(counters) == 0 {
		_, err = fmt.Fprintln(out, "no counters")
		return err
	}

	now := env.clock.Now()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tELAPSED\tSTARTED\tWIDGET")
	for _, c := range counters {
		widget := ""
		if c.IsWidget {
			widget = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Elapsed(now), model.FormatInput(c.StartAt.In(now.Location())), widget)
	}
	return tw.Flush()
}
