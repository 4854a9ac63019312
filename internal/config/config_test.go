package config_test

import (
	"directory/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Empty(t, cfg.LogLevel)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "directory", cfg.Database.DatabaseName)
	require.Equal(t, "seed/countries.json", cfg.Seed.CountriesFile)
	require.Equal(t, "seed/persons.json", cfg.Seed.PersonsFile)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(writeConfig(t, `
http:
  addr: ":9090"
database:
  host: db
seed:
  personsFile: /data/persons.json
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 6543, cfg.Database.Port)
	require.Equal(t, "/data/persons.json", cfg.Seed.PersonsFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
