package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9090", expectedHost: "127.0.0.1", expectedPort: 9090},
		{name: "all interfaces", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname is not an ip", input: "example.com:80", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
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
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{
		"-a", "127.0.0.1:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-db-driver", "pgx",
		"-d", "postgres://localhost/cards",
		"-seed",
		"-c", "/etc/cashcard.json",
		"-version", "1.0.0",
		"-hash-key", "key",
		"-required-role", "ADMIN",
		"-request-timeout", "5s",
		"-page-size", "5",
		"-max-page-size", "50",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/cards", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.Seed)
	assert.Equal(t, "/etc/cashcard.json", cfg.JSONFilePath)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "key", cfg.App.HashKey)
	assert.Equal(t, "ADMIN", cfg.Auth.RequiredRole)
	assert.Equal(t, 5, cfg.Pagination.DefaultSize)
	assert.Equal(t, 50, cfg.Pagination.MaxSize)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.Storage.DB.Seed)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-config", "alias.json"})
	require.NoError(t, err)

	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nowhere"})
	assert.Error(t, err)
}

func TestParseClientConfig(t *testing.T) {
	t.Setenv("CLIENT_USERNAME", "sarah1")
	t.Setenv("CLIENT_PASSWORD", "abc123")

	cfg, err := parseClientConfig(newTestFlagSet(), []string{"-a", "localhost:9000", "-p", "override", "get", "99"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "sarah1", cfg.Adapter.Username)
	assert.Equal(t, "override", cfg.Adapter.Password)
	assert.Equal(t, defaultClientTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"get", "99"}, cfg.Args)
}

func TestParseClientConfig_InvalidTimeout(t *testing.T) {
	_, err := parseClientConfig(newTestFlagSet(), []string{"-request-timeout", "0s"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
