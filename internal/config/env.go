// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the APP_*, STORAGE_*, LOG_* and CONFIG variables of the
// process environment into cfg. Empty variables are treated as unset.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvMap(cfg, env.ToMap(os.Environ()))
}

// parseEnvMap is parseEnv over an explicit environment.
func parseEnvMap(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
