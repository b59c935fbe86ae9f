// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Timeout < 0 {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Redis.DB < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Redis.Address == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Timeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Log.File == "" {
		return ErrInvalidLogConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
