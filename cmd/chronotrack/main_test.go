package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/chronotrack/internal/config"
	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func jsonStore(t *testing.T) []string {
	t.Helper()
	return []string{"--driver", "json", "--db", filepath.Join(t.TempDir(), "counters.json")}
}

func TestAddThenList(t *testing.T) {
	db := jsonStore(t)

	out, err := runCLI(t, append(db, "add", "Quit", "smoking", "--start", "2024-01-01 09:00", "--color", "green")...)
	require.NoError(t, err)
	assert.Contains(t, out, "added Quit smoking")

	_, err = runCLI(t, append(db, "add", "Gym", "--widget")...)
	require.NoError(t, err)

	out, err = runCLI(t, append(db, "list")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ELAPSED")
	assert.Contains(t, lines[1], "Gym", "newest counter is listed first")
	assert.Contains(t, lines[2], "Quit smoking")
	assert.Contains(t, lines[2], "2024-01-01 09:00")

	out, err = runCLI(t, append(db, "list", "--widgets")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Gym")
	assert.NotContains(t, out, "Quit smoking")
}

func TestListEmptyStore(t *testing.T) {
	out, err := runCLI(t, append(jsonStore(t), "list")...)
	require.NoError(t, err)
	assert.Equal(t, "no counters\n", out)
}

func TestAddRejectsBadFlags(t *testing.T) {
	db := jsonStore(t)

	_, err := runCLI(t, append(db, "add", "Gym", "--color", "teal")...)
	require.ErrorIs(t, err, model.ErrInvalidColor)

	_, err = runCLI(t, append(db, "add", "Gym", "--format", "weeks")...)
	require.ErrorIs(t, err, elapsed.ErrInvalidDisplayFormat)

	_, err = runCLI(t, append(db, "add", "Gym", "--start", "someday")...)
	require.ErrorIs(t, err, model.ErrInvalidInstant)

	_, err = runCLI(t, append(db, "add")...)
	require.Error(t, err)
}

func TestShowCounter(t *testing.T) {
	db := jsonStore(t)
	_, err := runCLI(t, append(db, "add", "Gym", "--start", "2020-01-01")...)
	require.NoError(t, err)

	out, err := runCLI(t, append(db, "show", "gym", "--format", "days")...)
	require.NoError(t, err)
	assert.Regexp(t, `^Gym: \d+d\n$`, out)

	_, err = runCLI(t, append(db, "show", "Nothing")...)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := jsonStore(t)
	_, err := runCLI(t, append(src, "add", "Gym", "--start", "2023-05-01 07:30")...)
	require.NoError(t, err)
	_, err = runCLI(t, append(src, "add", "Job", "--widget")...)
	require.NoError(t, err)

	backupPath := filepath.Join(t.TempDir(), "out", "backup.json")
	out, err := runCLI(t, append(src, "export", "--output", backupPath)...)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 2 counters")

	dst := jsonStore(t)
	_, err = runCLI(t, append(dst, "add", "Car")...)
	require.NoError(t, err)
	out, err = runCLI(t, append(dst, "import", backupPath)...)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 counters\n", out)

	out, err = runCLI(t, append(dst, "list")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Job")
	assert.Contains(t, lines[2], "Gym")
	assert.Contains(t, lines[3], "Car")
}

func TestSQLiteDriver(t *testing.T) {
	db := []string{"--driver", "sqlite", "--db", filepath.Join(t.TempDir(), "counters.db")}
	_, err := runCLI(t, append(db, "add", "Gym")...)
	require.NoError(t, err)

	out, err := runCLI(t, append(db, "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Gym")
}

func TestUnknownDriver(t *testing.T) {
	_, err := runCLI(t, "--driver", "postgres", "list")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGlobalOptionsSwapDefaultPath(t *testing.T) {
	cfg := config.Defaults()
	require.NoError(t, (&globalOptions{Driver: "json"}).apply(cfg))
	assert.Equal(t, config.DefaultJSONPath, cfg.Storage.Path)

	cfg = config.Defaults()
	cfg.Storage.Path = "/data/mine.db"
	require.NoError(t, (&globalOptions{Driver: "json"}).apply(cfg))
	assert.Equal(t, "/data/mine.db", cfg.Storage.Path)
}
