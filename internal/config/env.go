// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the mypass variables. MYPASS_SESSION_AUTO_LOCK_TIMEOUT
// wins over SESSION_AUTO_LOCK_TIMEOUT when both are set.
const EnvPrefix = "MYPASS_"

// parseEnv fills cfg from the bare variable names first, then overlays the
// MYPASS_ prefixed ones.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	prefixed := &StructuredConfig{}
	if err := env.ParseWithOptions(prefixed, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", EnvPrefix, err)
	}

	if err := mergo.Merge(cfg, prefixed, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging %s env configs: %w", EnvPrefix, err)
	}

	return nil
}
