package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.SimulatedLatency)
	assert.Equal(t, "casedesk", cfg.Redis.Prefix)
	assert.Equal(t, "casedesk_fixtures", cfg.Postgres.Table)
	assert.Empty(t, cfg.Postgres.URL)
	assert.Equal(t, 500*time.Millisecond, cfg.Delays.Explainability)
	assert.Equal(t, DefaultDelays, cfg.EffectiveDelays())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	cfg, err := load(envOf(map[string]string{
		"CASEDESK_ADDR":              ":9090",
		"CASEDESK_FIXTURES_DIR":      "/data",
		"CASEDESK_REDIS_URL":         "redis://localhost:6379/0",
		"CASEDESK_REDIS_PREFIX":      "qa",
		"CASEDESK_POSTGRES_URL":      "postgres://localhost/casedesk",
		"CASEDESK_POSTGRES_TABLE":    "qa_fixtures",
		"CASEDESK_SIMULATED_LATENCY": "false",
		"CASEDESK_LOG_LEVEL":         "debug",
		"CASEDESK_LOG_FORMAT":        "text",
		"CASEDESK_TIMEZONE":          "UTC",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data", cfg.FixturesDir)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "qa", cfg.Redis.Prefix)
	assert.Equal(t, "postgres://localhost/casedesk", cfg.Postgres.URL)
	assert.Equal(t, "qa_fixtures", cfg.Postgres.Table)
	assert.False(t, cfg.SimulatedLatency)
	assert.Equal(t, Delays{}, cfg.EffectiveDelays())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadRejectsBadLatencyFlag(t *testing.T) {
	_, err := load(envOf(map[string]string{"CASEDESK_SIMULATED_LATENCY": "sometimes"}))
	assert.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "casedesk.yaml")
	doc := []byte("addr: \":7000\"\ndelays:\n  case: 1s\nlog:\n  format: text\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	cfg, err := load(envOf(map[string]string{
		"CASEDESK_CONFIG":    path,
		"CASEDESK_LOG_LEVEL": "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, time.Second, cfg.Delays.Case)
	assert.Equal(t, 200*time.Millisecond, cfg.Delays.Cases, "untouched keys keep defaults")
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level, "environment wins over file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(envOf(map[string]string{"CASEDESK_CONFIG": "/does/not/exist.yaml"}))
	assert.Error(t, err)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}
