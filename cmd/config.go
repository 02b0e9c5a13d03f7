package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"dronefleet/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	ReturnSweepInterval time.Duration
}

// LoadConfig reads the configuration from the environment. Variables found in
// the given dotenv files are applied first; missing files are skipped.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	interval := jobs.DefaultReturnInterval
	if raw := os.Getenv("RETURN_SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("RETURN_SWEEP_INTERVAL: %w", err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("RETURN_SWEEP_INTERVAL must be positive, got %s", parsed)
		}
		interval = parsed
	}

	return Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		DBHost:              envOrDefault("DB_HOST", "localhost"),
		DBPort:              envOrDefault("DB_PORT", "5432"),
		DBUser:              envOrDefault("DB_USER", "postgres"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              envOrDefault("DB_NAME", "dronefleet"),
		DBSslMode:           envOrDefault("DB_SSLMODE", "disable"),
		ReturnSweepInterval: interval,
	}, nil
}

// DSN is the connection string of the service database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// AdminDSN points at the maintenance database used to create DBName.
func (c Config) AdminDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
