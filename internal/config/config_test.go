package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 20, cfg.Rolling)
	require.Equal(t, 3, cfg.Retries)
	require.Equal(t, ColorAuto, cfg.ColorMode)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{
			name:    "bad color mode",
			mutate:  func(c *Config) { c.ColorMode = "sometimes" },
			wantErr: "color mode",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: "workers",
		},
		{
			name:    "zero rolling",
			mutate:  func(c *Config) { c.Rolling = 0 },
			wantErr: "rolling",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Retries = -1 },
			wantErr: "retries",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	require.Equal(t, "/data/in", NormalizeDirArg("/data/in/"))
	require.Equal(t, "/data/in", NormalizeDirArg("/data/in///"))
	require.Equal(t, "/", NormalizeDirArg("/"))
}

func TestRequireDir(t *testing.T) {
	cfg := Default()
	require.ErrorContains(t, cfg.RequireDir(), "target directory")

	dir := t.TempDir()
	cfg.Dir = dir
	require.NoError(t, cfg.RequireDir())

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.Dir = file
	require.ErrorContains(t, cfg.RequireDir(), "not a directory")
}

func TestLoadRules_BuiltIns(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	require.Contains(t, rules.Keywords, "汉化")
	require.Contains(t, rules.StripLiterals, "(同人誌)")
}

func TestLoadRules_Override(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := "keywords: [\"fansub\", \"scans\"]\nstrip: [\"(sample)\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"fansub", "scans"}, rules.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"(sample)"}, rules.StripLiterals); diff != "" {
		t.Errorf("strip mismatch (-want +got):\n%s", diff)
	}
	// Untouched section keeps the built-in glyph table.
	require.Equal(t, "[", rules.Glyphs["【"])
}

func TestLoadRules_Errors(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "rules file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("keywords: {not: a list}"), 0o644))
	_, err = LoadRules(bad)
	require.Error(t, err)
}
