package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bench:
  min_entities: 64
  strategies: [all_pairs, cell_neighbours, grid]
logging:
  level: error
`), 0o644))
	t.Setenv("AABBGRID_CONFIG", path)
	require.NoError(t, run())
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bench]\nstrategies = [\"octree\"]\n"), 0o644))
	t.Setenv("AABBGRID_CONFIG", path)
	require.ErrorContains(t, run(), "octree")
}

func TestRunMissingConfig(t *testing.T) {
	t.Setenv("AABBGRID_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, run(), "load config")
}
