package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {"version": "0.3.0", "log_level": "debug"},
		"style": {
			"paths": ["base.mplstyle"],
			"builtin": "latex",
			"unknown_keys": "ignore",
			"duplicates": "last-wins",
			"watch": true,
			"watch_debounce": "750ms"
		},
		"storage": {"db": {"driver": "sqlite3", "dsn": "/var/lib/styles.db"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "15s", "grpc_address": "0.0.0.0:9090", "auth_key": "k1"},
		"adapter": {"http_address": "http://styles:8080", "request_timeout": 2000000000, "auth_key": "k1"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, []string{"base.mplstyle"}, cfg.Style.Paths)
	assert.Equal(t, "latex", cfg.Style.Builtin)
	assert.True(t, cfg.Style.Watch)
	assert.Equal(t, 750*time.Millisecond, cfg.Style.WatchDebounce)
	assert.Equal(t, "/var/lib/styles.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "k1", cfg.Server.AuthKey)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "k1", cfg.Adapter.AuthKey)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "later"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
