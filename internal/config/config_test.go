package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		path := writeConfig(t, `
[admin]
token = "secret"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, BackendJSONFile, cfg.Storage.Backend)
		assert.Equal(t, "data/bookings.json", cfg.Storage.BookingsFile)
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090

[storage]
backend = "postgres"

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "bookings"

[admin]
token = "secret"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
		assert.Contains(t, cfg.Database.DSN(), "host=localhost")
		assert.Contains(t, cfg.Database.DSN(), "dbname=bookings")
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		path := writeConfig(t, `
[storage]
backend = "redis"

[admin]
token = "secret"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing admin token rejected", func(t *testing.T) {
		path := writeConfig(t, `
[storage]
backend = "jsonfile"
bookings_file = "data/bookings.json"
audit_file = "data/audit.log"
`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}
