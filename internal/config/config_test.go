package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
)

const minimal = `
[database]
host = "localhost"
dbname = "booking"

[staff_service]
url = "http://staff:8080"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(minimal)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, DriverMemory, cfg.Cache.Driver)
	assert.Equal(t, DriverMemory, cfg.Events.Driver)
	assert.Equal(t, DriverLog, cfg.Mail.Driver)
	assert.Equal(t, domain.DefaultMaxAdvanceDays, cfg.Booking.MaxAdvanceDays)
	assert.Equal(t, domain.DefaultAutoCancelGraceMinutes, cfg.Booking.AutoCancelGraceMinutes)
	assert.Equal(t, domain.DefaultAutoConfirmRatio, cfg.Booking.AutoConfirmRatio)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=booking sslmode=disable", cfg.Database.DSN())
}

func TestParse_Drivers(t *testing.T) {
	cfg, err := Parse(minimal + `
[cache]
driver = "Redis"
addr = "redis:6379"

[events]
driver = "kafka"
brokers = ["kafka:9092"]

[mail]
driver = "smtp"
host = "smtp.example.com"
from = "noreply@example.com"

[booking]
timezone = "Europe/Moscow"
`)

	require.NoError(t, err)
	assert.Equal(t, DriverRedis, cfg.Cache.Driver)
	assert.Equal(t, "booking-events", cfg.Events.Topic)
	assert.Equal(t, 587, cfg.Mail.Port)
	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no database", data: `[staff_service]
url = "http://staff"`},
		{name: "redis without addr", data: minimal + "[cache]\ndriver = \"redis\"\n"},
		{name: "kafka without brokers", data: minimal + "[events]\ndriver = \"kafka\"\n"},
		{name: "unknown mail driver", data: minimal + "[mail]\ndriver = \"pigeon\"\n"},
		{name: "bad timezone", data: minimal + "[booking]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "ratio above one", data: minimal + "[booking]\nauto_confirm_ratio = 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[database\nhost=")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimal+"\n"+`[mail]
password = "${TEST_DB_PASSWORD}"
`), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Mail.Password)
}
