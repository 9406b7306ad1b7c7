// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	switch cfg.App.PasswordHasher {
	case HasherArgon2id:
	case HasherBcrypt:
		if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
			return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
		}
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
