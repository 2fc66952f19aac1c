package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/chronotrack/internal/backup"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

type exportOptions struct {
	Output string
}

func newExportCommand(gopts *globalOptions) *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:               "export [flags]",
		Short:             "Write every counter to a JSON backup file",
		DisableAutoGenTag: true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), opts, gopts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "backup `file` (default chronotrack_backup_<date>.json)")
	return cmd
}

func runExport(ctx context.Context, opts exportOptions, gopts *globalOptions, out io.Writer) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	counters, err := env.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	path := opts.Output
	if path == "" {
		path = backup.FileName(env.clock.Now())
	}
	if err := backup.ExportFile(path, counters); err != nil {
		return err
	}
	env.logger.Info("backup exported", "path", path, "counters", len(counters))

	_, err = fmt.Fprintf(out, "exported %d counters to %s\n", len(counters), path)
	return err
}

func newImportCommand(gopts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Merge counters from a JSON backup file",
		Long: `
The "import" command puts the counters of a backup at the top of the list.
Counters already present with the same id are replaced by the imported copy.
`,
		DisableAutoGenTag: true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), gopts, args[0], cmd.OutOrStdout())
		},
	}
}

func runImport(ctx context.Context, gopts *globalOptions, path string, out io.Writer) (err error) {
	env, err := openEnvironment(gopts)
	if err != nil {
		return err
	}
	defer func() { err = joinClose(err, env) }()

	imported, err := backup.ImportFile(path, time.Local)
	if err != nil {
		return err
	}
	existing, err := env.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load counters: %w", err)
	}
	if err := env.store.Save(ctx, model.Merge(imported, existing)); err != nil {
		return fmt.Errorf("save counters: %w", err)
	}
	env.logger.Info("backup imported", "path", path, "counters", len(imported))

	_, err = fmt.Fprintf(out, "imported %d counters\n", len(imported))
	return err
}
