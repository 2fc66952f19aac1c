package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	gopts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "chronotrack",
		Short: "Track how long it has been since the moments that matter",
		Long: `
chronotrack keeps a list of elapsed-time counters. Running it without a
command opens the terminal UI; the commands below work on the same store.

Configuration is read from CHRONOTRACK_* environment variables and can be
overridden with the global flags.
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), cmd, gopts)
		},
	}
	gopts.AddFlags(cmd.PersistentFlags())
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newListCommand(gopts),
		newAddCommand(gopts),
		newShowCommand(gopts),
		newExportCommand(gopts),
		newImportCommand(gopts),
	)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chronotrack failed: %v\n", err)
		os.Exit(1)
	}
}
