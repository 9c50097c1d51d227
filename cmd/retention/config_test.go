package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "data/members.xlsx", cfg.Workbook)
	require.Equal(t, 10, cfg.Chart.TopN)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workbook: /srv/club/members.xlsx\nchart:\n  top_n: 3\nverbose: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/club/members.xlsx", cfg.Workbook)
	require.Equal(t, 3, cfg.Chart.TopN)
	require.True(t, cfg.Verbose)
	// Unset keys keep their defaults.
	require.Equal(t, "leaderboard.png", cfg.Chart.Output)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workbook: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
