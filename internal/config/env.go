// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Struct fields are
// mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom populates cfg from the given variables instead of the
// process environment.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnvFrom(cfg any, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
