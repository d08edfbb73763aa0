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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"backend_url":      "http://drive-backend:5000",
		"callback_addr":    "127.0.0.1:3100",
		"database_path":    "state/s.db",
		"app_id":           "photos",
		"identity_token":   "tok",
		"identity_secret":  "shh",
		"transfer_mode":    "s3",
		"transfer_timeout": 5000000000,
		"s3": map[string]any{
			"bucket":        "uploads",
			"region":        "eu-central-1",
			"base_endpoint": "http://minio:9000",
			"access_key":    "ak",
			"secret_key":    "sk",
		},
		"log_level":  "debug",
		"log_format": "json",
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://drive-backend:5000", cfg.BackendURL)
		assert.Equal(t, "127.0.0.1:3100", cfg.CallbackAddr)
		assert.Equal(t, "state/s.db", cfg.DatabasePath)
		assert.Equal(t, "photos", cfg.AppID)
		assert.Equal(t, "tok", cfg.IdentityToken)
		assert.Equal(t, "shh", cfg.IdentitySecret)
		assert.Equal(t, TransferModeS3, cfg.TransferMode)
		assert.Equal(t, 5*time.Second, cfg.TransferTimeout)
		assert.Equal(t, "uploads", cfg.S3Bucket)
		assert.Equal(t, "eu-central-1", cfg.S3Region)
		assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
		assert.Equal(t, "ak", cfg.S3AccessKey)
		assert.Equal(t, "sk", cfg.S3SecretKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"app_id": "other"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "other", cfg.AppID)
		assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
		assert.Equal(t, TransferModeHTTP, cfg.TransferMode)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BackendURL: "http://keep"}
		parseJson(cfg)
		assert.Equal(t, "http://keep", cfg.BackendURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
