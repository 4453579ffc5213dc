package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/geoarea/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("AREA_ENV", "local")
	t.Setenv("AREA_INTERVAL", "30s")
	t.Setenv("AREA_WORKERS", "8")
	t.Setenv("AREA_ELLIPSOID", "grs80")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "grs80", cfg.Ellipsoid)
}

func TestMustLoad_Defaults(t *testing.T) {
	for _, key := range []string{"AREA_ENV", "AREA_HEALTH_PORT", "AREA_WORKERS", "AREA_INTERVAL", "AREA_ELLIPSOID", "DB_PORT"} {
		t.Setenv(key, "")
	}

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "wgs84", cfg.Ellipsoid)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("AREA_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("AREA_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("AREA_WORKERS", "0")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be a positive integer", func() {
		config.MustLoad()
	})
}
