package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://painel.example.com")
	t.Setenv("DATABASE_USER", "advisor")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("DATABASE_URL", "db:5432/advisor?sslmode=disable")
	t.Setenv("AUTH_TOKEN_TTL", "2h")
	t.Setenv("DAILY_ADVISORY_SYNC_ENABLED", "true")
	t.Setenv("DAILY_ADVISORY_SYNC_MAX_CONCURRENT_JOBS", "5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://painel.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres://advisor:segredo@db:5432/advisor?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.DailyAdvisorySync.Enabled)
	assert.Equal(t, 5, cfg.DailyAdvisorySync.MaxConcurrentJobs)
	assert.Equal(t, "0 7 * * *", cfg.DailyAdvisorySync.CronSchedule)
	assert.Equal(t, "data/business_data.csv", cfg.Loader.CSVPath)
}
