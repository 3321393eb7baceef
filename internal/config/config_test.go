package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DatabaseDialect)
	assert.Equal(t, 30.0, cfg.TargetFoodCostPct)
	assert.True(t, cfg.MetricsConfig.Enabled)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database_dialect: postgres
database_url: host=localhost dbname=larder sslmode=disable
target_food_cost_pct: 28
metrics:
  enabled: false
  port: 9191
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LARDER_DATABASE_URL", "host=db dbname=larder sslmode=disable")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDialect)
	assert.Equal(t, "host=db dbname=larder sslmode=disable", cfg.DatabaseURL, "env wins over file")
	assert.Equal(t, 28.0, cfg.TargetFoodCostPct)
	assert.False(t, cfg.MetricsConfig.Enabled)
	assert.Equal(t, 9191, cfg.MetricsConfig.Port)
}

func TestLoadRejectsBadTargetPct(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_food_cost_pct: 140\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
