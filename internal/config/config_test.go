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
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5432
user = "svc"
password = "secret"
dbname = "bookings"

[policy]
master_share = 0.6
salon_share = 0.4
cancellation_window_hours = 48.0
early_refund_percent = 1.0
late_refund_percent = 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 0.6, cfg.Policy.MasterShare)
	assert.Equal(t, 48.0, cfg.Policy.CancellationWindowHours)
	assert.Equal(t, 0.5, cfg.Policy.LateRefundPercent)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "bookings"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "booking-system", cfg.Metrics.ServiceName)

	// дефолтная политика 70/30 с окном отмены 24 часа
	assert.Equal(t, 0.70, cfg.Policy.MasterShare)
	assert.Equal(t, 0.30, cfg.Policy.SalonShare)
	assert.Equal(t, 24.0, cfg.Policy.CancellationWindowHours)
	assert.Equal(t, 1.0, cfg.Policy.EarlyRefundPercent)
	assert.Equal(t, 0.0, cfg.Policy.LateRefundPercent)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host and dbname are required")
}

func TestLoad_SharesExceedWhole(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "bookings"

[policy]
master_share = 0.8
salon_share = 0.3
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed 1.0")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "bookings",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=bookings sslmode=disable",
		db.DSN())
}
