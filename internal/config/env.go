// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from SERVER_*, STORAGE_*, APP_*, AUTH_* and
// PAGINATION_* variables. Unset variables leave fields at their zero value
// so mergo keeps the defaults underneath.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}

	return nil
}
