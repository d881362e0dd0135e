package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TICKLIST_CONFIG_PATH",
		"TICKLIST_SERVER_HOST",
		"TICKLIST_SERVER_PORT",
		"TICKLIST_STORAGE_BACKEND",
		"TICKLIST_STORAGE_PATH",
		"TICKLIST_TRANSPORT",
		"TICKLIST_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "ticklist.db", cfg.Storage.Path)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKLIST_SERVER_HOST", "0.0.0.0")
	t.Setenv("TICKLIST_SERVER_PORT", "9090")
	t.Setenv("TICKLIST_STORAGE_BACKEND", "file")
	t.Setenv("TICKLIST_STORAGE_PATH", "/tmp/todos.json")
	t.Setenv("TICKLIST_TRANSPORT", "http")
	t.Setenv("TICKLIST_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "file", cfg.Storage.Backend)
	require.Equal(t, "/tmp/todos.json", cfg.Storage.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: 10.0.0.1
  port: 3000
storage:
  backend: file
  path: data/todos.json
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("TICKLIST_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "file", cfg.Storage.Backend)
	require.Equal(t, "data/todos.json", cfg.Storage.Path)
	require.Equal(t, "warn", cfg.Log.Level)
	// Unspecified values keep their defaults.
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: file\n"), 0o644))
	t.Setenv("TICKLIST_CONFIG_PATH", path)
	t.Setenv("TICKLIST_STORAGE_BACKEND", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKLIST_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKLIST_STORAGE_BACKEND", "redis")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown storage backend")
}

func TestLoad_UnknownTransport(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKLIST_TRANSPORT", "grpc")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown transport mode")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKLIST_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}
