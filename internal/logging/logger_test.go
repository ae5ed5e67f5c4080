package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krelune/tidybatch/internal/config"
)

func TestNew_NoFile(t *testing.T) {
	cfg := config.Default()
	cfg.ColorMode = config.ColorNever
	l, err := New(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
	l.Success("done")
}

func TestNew_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "tidybatch.log")

	l, err := New(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	l.Warn("careful")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(b), "INFO")
	require.Contains(t, string(b), "to file")
	require.Contains(t, string(b), "WARN")
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "t.log")

	l, err := New(&cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	require.NoError(t, l.Close())

	b, _ := os.ReadFile(cfg.LogFile)
	require.NotContains(t, string(b), "hidden")
}

func TestDebugEmittedWhenVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ColorMode = config.ColorNever
	cfg.Verbose = true
	cfg.LogFile = filepath.Join(dir, "t.log")

	l, err := New(&cfg)
	require.NoError(t, err)
	l.Debug("visible %d", 42)
	require.NoError(t, l.Close())

	b, _ := os.ReadFile(cfg.LogFile)
	require.Contains(t, string(b), "visible 42")
}
