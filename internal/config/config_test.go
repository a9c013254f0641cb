package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "ENGINE", "LOG_LEVEL", "HISTORY_DRIVER", "DB_PATH", "DATABASE_URL", "HISTORY_LIMIT"} {
		t.Setenv(k, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "geoconv.yaml")
	content := `
port: "9090"
engine: PROJ
log_level: debug
history:
  driver: postgres
  database_url: postgres://file/db
  limit: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("HISTORY_LIMIT", "75")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, EngineProj, cfg.Engine)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, HistoryPostgres, cfg.History.Driver)
	assert.Equal(t, "postgres://env/db", cfg.History.DatabaseURL)
	assert.Equal(t, 75, cfg.History.Limit)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"engine", map[string]string{"ENGINE": "gdal"}},
		{"driver", map[string]string{"HISTORY_DRIVER": "redis"}},
		{"postgres without url", map[string]string{"HISTORY_DRIVER": "postgres"}},
		{"limit not a number", map[string]string{"HISTORY_LIMIT": "ten"}},
		{"limit out of range", map[string]string{"HISTORY_LIMIT": "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("GEOCONV_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("GEOCONV_TEST_KEY", "fallback"))

	t.Setenv("GEOCONV_TEST_KEY", "set")
	assert.Equal(t, "set", Get("GEOCONV_TEST_KEY", "fallback"))
}
