// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App struct {
		LogLevel string
	}
	Server struct {
		HTTPAddress    string
		RequestTimeout time.Duration
	}
	Storage struct {
		DB DB
	}
}

// GetServerConfig builds and validates the server config view. flags may
// be nil.
func GetServerConfig(flags *Flags) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{}
	serverCfg.App.LogLevel = cfg.App.LogLevel
	serverCfg.Server.HTTPAddress = cfg.Server.HTTPAddress
	serverCfg.Server.RequestTimeout = cfg.Server.RequestTimeout
	serverCfg.Storage.DB = cfg.Storage.DB

	return serverCfg, serverCfg.validate()
}
