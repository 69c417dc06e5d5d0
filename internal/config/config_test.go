package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081

[logs]
level = "debug"

[database]
host = "localhost"
user = "travel"
password = "secret"
dbname = "catalog"

[mongo]
uri = "mongodb://localhost:27017"
database = "travel"

[metrics]
enabled = true

[pricing]
child_discount_rate = 0.0

[sharing]
public_base_url = "https://trips.example.com"

[admin]
user_ids = ["admin-1", "admin-2"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "host=localhost port=5432 user=travel password=secret dbname=catalog sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "bookings", cfg.Mongo.Collection)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "travel_booking", cfg.Metrics.ServiceName)
	assert.Equal(t, 0.0, cfg.Pricing.ChildDiscount())
	assert.True(t, cfg.Admin.IsAdmin("admin-2"))
	assert.False(t, cfg.Admin.IsAdmin("user-1"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://travel@db:5432/catalog")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres://travel@db:5432/catalog", cfg.Database.DSN())
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoad_DefaultChildDiscount(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
host = "localhost"
[mongo]
uri = "mongodb://localhost:27017"
database = "travel"
`))
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Pricing.ChildDiscount())
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, `
[pricing]
child_discount_rate = 1.5
[notifier]
enabled = true
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "mongo.uri is required")
	assert.Contains(t, err.Error(), "child_discount_rate")
	assert.Contains(t, err.Error(), "sender_email")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
