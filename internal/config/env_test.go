// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFrom_AllFields(t *testing.T) {
	environ := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PASSWORD_HASHER": "argon2id",
		"APP_BCRYPT_COST":     "12",
		"APP_TOKEN_NAME":      "mobile",
		"APP_VERSION":         "1.2.3",
		"APP_LOG_LEVEL":       "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":          "sqlite3",
		"STORAGE_DB_DATABASE_URI":    "file:auth.db",
		"STORAGE_DB_MAX_OPEN_CONNS":  "4",
		"STORAGE_DB_CONNECT_RETRIES": "5",
	}

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, environ))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, HasherArgon2id, cfg.App.PasswordHasher)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "mobile", cfg.App.TokenName)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:auth.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, uint64(5), cfg.Storage.DB.ConnectRetries)
}

func TestParseEnvFrom_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{}))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnvFrom_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{name: "bad duration", environ: map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"}},
		{name: "bad int", environ: map[string]string{"APP_BCRYPT_COST": "ten"}},
		{name: "negative uint", environ: map[string]string{"STORAGE_DB_CONNECT_RETRIES": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseEnvFrom(&StructuredConfig{}, tt.environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}

func TestParseEnv_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("AUTH_TOKEN", "from-env")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)

	clientCfg := &ClientConfig{}
	require.NoError(t, parseEnv(clientCfg))
	assert.Equal(t, "from-env", clientCfg.Token)
}
