package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "CATALOG_SOURCE", "DATABASE_URL", "HTTP_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Env:      "development",
		LogLevel: "info",
		Source:   SourceStatic,
		HTTPAddr: "localhost:8484",
	}, cfg)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"CATALOG_SOURCE=postgres\nDATABASE_URL=postgres://catalog@localhost/catalog\nHTTP_ADDR=:9090\n",
	), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("HTTP_ADDR")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Source)
	assert.Equal(t, "postgres://catalog@localhost/catalog", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=error\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "Static", cfg: Config{Source: SourceStatic}},
		{name: "Postgres with DSN", cfg: Config{Source: SourcePostgres, DatabaseURL: "postgres://x"}},
		{name: "Postgres without DSN", cfg: Config{Source: SourcePostgres}, wantErr: ErrMissingDatabaseURL.Error()},
		{name: "Unknown source", cfg: Config{Source: "csv"}, wantErr: `unknown CATALOG_SOURCE "csv"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
