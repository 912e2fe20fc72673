// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults of the command-line client.
const (
	DefaultClientAddress = "http://localhost:8080"
	DefaultClientTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the attendance server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with authenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level configuration of attendctl.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds the client configuration from defaults, the .env
// file and environment variables, then applies overrides (typically command
// flags) on top of it. Zero fields of overrides are ignored.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientAddress,
			RequestTimeout: DefaultClientTimeout,
		},
	}
	for _, layer := range []*ClientConfig{envCfg, &overrides} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}
