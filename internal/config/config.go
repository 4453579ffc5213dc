package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the measurement service.
// It includes the environment, server port, number of workers, interval for
// processing, the reference ellipsoid and database configuration.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring server.
// - Workers: The number of concurrent workers measuring regions.
// - Interval: The duration between polling rounds.
// - Ellipsoid: The name of the reference ellipsoid (wgs84, grs80, sphere).
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env       string         `mapstructure:"env"`       // Env is the current environment: local, development, production.
	Port      int            `mapstructure:"port"`      // Port is the monitoring server port.
	Workers   int            `mapstructure:"workers"`   // The number of concurrent workers for processing regions.
	Interval  time.Duration  `mapstructure:"interval"`  // The duration between processing intervals.
	Ellipsoid string         `mapstructure:"ellipsoid"` // The reference ellipsoid areas are measured on.
	Database  PostgresConfig `mapstructure:"postgres"`  // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"db_name"`  // Name is the name of the database.
}

// MustLoad loads the configuration from the environment, optionally seeded
// from a .env file, and panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("AREA_ENV", "production")
	v.SetDefault("AREA_HEALTH_PORT", "8080")
	v.SetDefault("AREA_WORKERS", "4")
	v.SetDefault("AREA_INTERVAL", "10m")
	v.SetDefault("AREA_ELLIPSOID", "wgs84")
	v.SetDefault("DB_PORT", "5432")

	interval, err := time.ParseDuration(v.GetString("AREA_INTERVAL"))
	if err != nil || interval <= 0 {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("AREA_HEALTH_PORT"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("AREA_WORKERS"))
	if err != nil || workers < 1 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}

	return &Config{
		Env:       v.GetString("AREA_ENV"),
		Port:      healthPort,
		Workers:   workers,
		Interval:  interval,
		Ellipsoid: v.GetString("AREA_ELLIPSOID"),
		Database: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
	}
}
