package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measures-generator/internal/resolve"
)

func write(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, resolve.DefaultPolicy(), cfg.ResolvePolicy())
	assert.Equal(t, []string{"./..."}, cfg.Generator.Patterns)
}

func TestLoad(t *testing.T) {
	path := write(t, t.TempDir(), `
[generator]
jobs = 3
patterns = ["./examples/..."]

[policy]
stacking = "union"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 3, cfg.Generator.Jobs)
	assert.Equal(t, []string{"./examples/..."}, cfg.Generator.Patterns)
	assert.Equal(t, resolve.Policy{Inclusion: resolve.IncludeWins, Stacking: resolve.Union}, cfg.ResolvePolicy())

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[generator\n", "failed to parse TOML"},
		{"jobs", "[generator]\njobs = -1\n", "jobs must not be negative"},
		{"inclusion", "[policy]\ninclusion = \"both\"\n", "unknown inclusion precedence"},
		{"level", "[log]\nlevel = \"loud\"\n", "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, t.TempDir(), tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDiscover_SearchesParents(t *testing.T) {
	root := t.TempDir()
	write(t, root, "[generator]\njobs = 2\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Generator.Jobs)
	assert.Equal(t, filepath.Join(root, FileName), cfg.Path)
}

func TestDiscover_DefaultsWithoutFile(t *testing.T) {
	path, ok, err := Find(t.TempDir())
	require.NoError(t, err)

	if ok {
		t.Skipf("%s found above the temp dir at %s", FileName, path)
	}

	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDiscover_RepositoryFile(t *testing.T) {
	cfg, err := Discover(".")
	require.NoError(t, err)

	assert.Equal(t, FileName, filepath.Base(cfg.Path))
	assert.Equal(t, []string{"./examples/..."}, cfg.Generator.Patterns)
	assert.Equal(t, 100, cfg.Generator.MaxDiagnostics)
	assert.Equal(t, resolve.DefaultPolicy(), cfg.ResolvePolicy())
}
