package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	raw := `
http:
  address: ":8080"
redis:
  addr: "localhost:6379"
  db: 1
kafka:
  brokers: ["localhost:9092"]
  booking_topic: bookings
  flight_topic: flights
  notifications_topic: notifications
  group_id: airinventory
cache:
  flights_ttl_seconds: 60
seed:
  path: seed.yaml
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "notifications", cfg.Kafka.NotificationsTopic)
	assert.Equal(t, 60, cfg.Cache.FlightsTTLSeconds)
	assert.Equal(t, "seed.yaml", cfg.Seed.Path)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not a mapping"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
