package config

import (
	"encoding/json"
	"os"
	"testing"

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

func noFlags() (*StructuredConfig, error) {
	return &StructuredConfig{}, nil
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, defaultPageSize, cfg.Pagination.DefaultSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Pagination.MaxSize)
	assert.Len(t, cfg.Auth.Principals, 2)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Server: Server{HTTPAddress: ":9000"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	// untouched defaults survive
	assert.Equal(t, defaultMaxPageSize, cfg.Pagination.MaxSize)
}

func TestBuild_PrincipalsReplaceDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{Principals: []string{"alice:secret:CARD-OWNER"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice:secret:CARD-OWNER"}, cfg.Auth.Principals)
}

func TestWithEnv_UsesEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(noFlags).build()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
}

func TestWithEnv_InvalidValueIsCollected(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "never")

	_, err := newConfigBuilder().withDefaults().withEnv().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags(func() (*StructuredConfig, error) {
		return nil, assert.AnError
	})

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Empty(t, b.configs)
}

func TestWithJSON_AppliedLast(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server":     map[string]any{"http_address": "0.0.0.0:8443"},
		"pagination": map[string]any{"default_size": 7},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Server:       Server{HTTPAddress: "localhost:1111"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8443", cfg.Server.HTTPAddress)
	assert.Equal(t, 7, cfg.Pagination.DefaultSize)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{
			name:    "no http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no principals",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.Principals = nil },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "malformed principal",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.Principals = []string{"sarah1"} },
			wantErr: ErrInvalidPrincipalEntry,
		},
		{
			name:    "no required role",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.RequiredRole = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "default size above max",
			mutate:  func(cfg *StructuredConfig) { cfg.Pagination.DefaultSize = cfg.Pagination.MaxSize + 1 },
			wantErr: ErrInvalidPaginationConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
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
