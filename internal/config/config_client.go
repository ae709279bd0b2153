// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL including its scheme.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// State holds the durable client state store settings.
	State State
}

// ClientSession holds session settings.
type ClientSession struct {
	AutoLockTimeout time.Duration
}

// ClientGenerator holds password generator settings.
type ClientGenerator struct {
	Length int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   ClientStorage
	Session   ClientSession
	Generator ClientGenerator
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flags may be nil.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    normalizeBaseURL(cfg.Adapter.HTTPAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			State: cfg.Storage.State,
		},
		Session:   ClientSession{AutoLockTimeout: cfg.Session.AutoLockTimeout},
		Generator: ClientGenerator{Length: cfg.Generator.Length},
	}

	return clientCfg, clientCfg.validate()
}

// normalizeBaseURL adds the http scheme to bare host:port addresses and
// strips the trailing slash.
func normalizeBaseURL(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return strings.TrimRight(address, "/")
}
