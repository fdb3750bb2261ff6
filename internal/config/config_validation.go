// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

var supportedDrivers = map[string]struct{}{
	"pgx":     {},
	"sqlite3": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if _, ok := supportedDrivers[cfg.Storage.DB.Driver]; !ok || cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Auth.RequiredRole == "" || len(cfg.Auth.Principals) == 0 {
		return ErrInvalidAuthConfigs
	}
	if _, err := cfg.Auth.ParsePrincipals(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAuthConfigs, err)
	}

	if cfg.Pagination.MaxSize < 1 || cfg.Pagination.DefaultSize < 1 || cfg.Pagination.DefaultSize > cfg.Pagination.MaxSize {
		return ErrInvalidPaginationConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
