package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
database:
  host: db.internal
  port: 6543
jwt:
  expiration: 2h
log:
  level: debug
`), 0o600))

	t.Setenv("DB_HOST", "override")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "override", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load("")

	assert.ErrorContains(t, err, "DB_PORT")
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{Host: "h", Port: 1, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=n sslmode=disable", d.DSN())
}
