package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dronefleet/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "RETURN_SWEEP_INTERVAL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "dronefleet", cfg.DBName)
	assert.Equal(t, 10*time.Second, cfg.ReturnSweepInterval)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("RETURN_SWEEP_INTERVAL", "250ms")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 250*time.Millisecond, cfg.ReturnSweepInterval)
	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=dronefleet sslmode=disable",
		cfg.DSN())
	assert.Contains(t, cfg.AdminDSN(), "dbname=postgres")
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("DB_NAME")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=fleet_test\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "fleet_test", cfg.DBName)
}

func TestLoadConfig_InvalidInterval(t *testing.T) {
	clearConfigEnv(t)

	for _, raw := range []string{"soon", "-5s", "0s"} {
		t.Setenv("RETURN_SWEEP_INTERVAL", raw)

		_, err := cmd.LoadConfig()

		assert.Error(t, err, raw)
	}
}
