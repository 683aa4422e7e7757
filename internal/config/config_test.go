package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // keep a developer .env out of the test

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/properties.csv", cfg.Dataset.Path)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.True(t, cfg.Search.DedupeProjects)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.SearchLog.DSN)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_PATH", "/srv/listings.xlsx")
	t.Setenv("DATASET_SHEET", "Listings")
	t.Setenv("SEARCH_DEFAULT_LIMIT", "5")
	t.Setenv("SEARCH_DEDUPE_PROJECTS", "false")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DATABASE_URL", "postgres://localhost/propsearch")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/listings.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Listings", cfg.Dataset.Sheet)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.False(t, cfg.Search.DedupeProjects)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "postgres://localhost/propsearch", cfg.SearchLog.DSN)
}

func TestLoad_InvalidNumberFallsBackWithWarning(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SEARCH_MAX_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "SEARCH_MAX_LIMIT")
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"zero default limit", map[string]string{"SEARCH_DEFAULT_LIMIT": "0"}, "SEARCH_DEFAULT_LIMIT"},
		{"max below default", map[string]string{"SEARCH_DEFAULT_LIMIT": "50", "SEARCH_MAX_LIMIT": "20"}, "SEARCH_MAX_LIMIT"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"bad port", map[string]string{"SERVER_PORT": "70000"}, "SERVER_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
