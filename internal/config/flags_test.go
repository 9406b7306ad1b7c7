package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-d", "file:test.db",
		"-driver", "sqlite3",
		"-config", "/etc/auth.json",
		"-password-hasher", "argon2id",
		"-bcrypt-cost", "11",
		"-token-name", "cli",
		"-request-timeout", "15s",
		"-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/auth.json", cfg.JSONFilePath)
	assert.Equal(t, HasherArgon2id, cfg.App.PasswordHasher)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "cli", cfg.App.TokenName)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)
}

func TestGetClientConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "env-token")

	cfg, err := GetClientConfig([]string{"-a", "127.0.0.1:9000", "-timeout", "3s", "me"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, []string{"me"}, cfg.Args)
}

func TestGetClientConfig_FlagTokenOverridesEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "env-token")

	cfg, err := GetClientConfig([]string{"-t", "flag-token", "logout"})
	require.NoError(t, err)

	assert.Equal(t, "flag-token", cfg.Token)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}
