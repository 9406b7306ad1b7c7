package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/auth"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later sources
// override earlier ones while zero fields keep the earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second"}}, App: App{TokenName: "cli"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Storage.DB.DSN)
	assert.Equal(t, "cli", cfg.App.TokenName)
	assert.Equal(t, HasherBcrypt, cfg.App.PasswordHasher)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite3", "dsn": "file:auth.db"}},
		"server":  map[string]any{"http_address": "0.0.0.0:9000", "request_timeout": "5s"},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path, "-d", "overridden-by-json"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:auth.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-config", "/does/not/exist.json"}).withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid defaults", mutate: func(*StructuredConfig) {}},
		{name: "argon2id ignores bcrypt cost", mutate: func(c *StructuredConfig) {
			c.App.PasswordHasher = HasherArgon2id
			c.App.BcryptCost = 0
		}},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty DSN", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown hasher", mutate: func(c *StructuredConfig) { c.App.PasswordHasher = "md5" }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 32 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
