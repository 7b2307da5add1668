package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	raw := `
http:
  address: ":8080"
database:
  host: localhost
  port: 5432
  user: rail
  password: rail
  name: railbooking
  ssl_mode: disable
redis:
  addr: "localhost:6379"
auth:
  jwt_secret: test-secret
drivers:
  storage: postgres
  receipts: s3
  notifier: kafka
booking:
  draft_ttl_minutes: 15
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, StoragePostgres, cfg.Drivers.Storage)
	assert.Equal(t, ReceiptsS3, cfg.Drivers.Receipts)
	assert.Equal(t, NotifierKafka, cfg.Drivers.Notifier)
	assert.Equal(t, 15, cfg.Booking.DraftTTLMinutes)
	assert.Equal(t,
		"host=localhost port=5432 user=rail password=rail dbname=railbooking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":8080\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Drivers.Storage)
	assert.Equal(t, ReceiptsLocal, cfg.Drivers.Receipts)
	assert.Equal(t, NotifierLog, cfg.Drivers.Notifier)
	assert.Equal(t, 30, cfg.Booking.DraftTTLMinutes)
	assert.Equal(t, 5, cfg.Booking.SideEffectTimeoutSecs)
	assert.Equal(t, "static/uploads", cfg.Booking.ReceiptsDir)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
