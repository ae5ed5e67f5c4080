package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krelune/tidybatch/internal/config"
)

type recorder struct {
	errors int
}

func (r *recorder) Info(string, ...interface{})    {}
func (r *recorder) Success(string, ...interface{}) {}
func (r *recorder) Warn(string, ...interface{})    {}
func (r *recorder) Error(string, ...interface{})   { r.errors++ }

func TestShell(t *testing.T) {
	// Every CI box has sh.
	require.NoError(t, Shell())
}

func TestRulesFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(good, []byte("keywords: [\"汉化\"]\n"), 0o644))
	require.NoError(t, RulesFile(good))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("keywords: [unclosed\n"), 0o644))
	require.Error(t, RulesFile(bad))

	require.Error(t, RulesFile(filepath.Join(dir, "missing.yaml")))
}

func TestJournalPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, JournalPath(filepath.Join(dir, "sub", "journal.db")))
	require.DirExists(t, filepath.Join(dir, "sub"))
}

func TestRun_BadRulesFileFails(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("keywords: [unclosed\n"), 0o644))

	cfg := config.Default()
	cfg.RulesFile = bad
	cfg.JournalPath = filepath.Join(dir, "journal.db")

	rec := &recorder{}
	require.Error(t, Run(&cfg, rec))
	require.Positive(t, rec.errors)
}

func TestRun_CleanEnvironment(t *testing.T) {
	cfg := config.Default()
	cfg.RulesFile = ""
	cfg.JournalPath = filepath.Join(t.TempDir(), "journal.db")

	require.NoError(t, Run(&cfg, &recorder{}))
}
