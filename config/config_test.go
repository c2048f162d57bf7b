package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "3000")
	t.Setenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/resto?parseTime=True")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_ROLE_ID", "")
	t.Setenv("SCHEDULE_CACHE_TTL", "")
	t.Setenv("MAX_SCHEDULE_DAYS", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, uint(7), cfg.Schedule.AdminRoleID)
	assert.Equal(t, 30*time.Second, cfg.Schedule.CacheTTL)
	assert.Equal(t, 62, cfg.Schedule.MaxDays)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT is required")
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoad_IntrospectNeedsProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("AUTH_MODE", "introspect")
	t.Setenv("AUTH_PROVIDER_URL", "")
	t.Setenv("AUTH_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_PROVIDER_URL is required")
	assert.Contains(t, err.Error(), "AUTH_API_KEY is required")
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_ROLE_ID", "")
	t.Setenv("SCHEDULE_CACHE_TTL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REDIS_HOST_FOR_TEST", "cache.local")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
port: "8080"
database:
  driver: postgres
redis:
  address: ${REDIS_HOST_FOR_TEST}:6379
schedule:
  admin_role_id: 3
  cache_ttl: 45s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "cache.local:6379", cfg.Redis.Address)
	assert.Equal(t, uint(3), cfg.Schedule.AdminRoleID)
	assert.Equal(t, 45*time.Second, cfg.Schedule.CacheTTL)

	t.Setenv("PORT", "9090")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "12")
	t.Setenv("X_BAD_INT", "twelve")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "2m")
	t.Setenv("X_SECS", "15")

	assert.Equal(t, 12, GetEnvAsInt("X_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("X_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("X_BOOL", false))
	assert.Equal(t, 2*time.Minute, GetEnvAsDuration("X_DUR", time.Second))
	assert.Equal(t, 15*time.Second, GetEnvAsDuration("X_SECS", time.Second))
	assert.Equal(t, time.Second, GetEnvAsDuration("X_MISSING", time.Second))
}
