// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// configuration service. It is populated by merging built-in defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds deployment-wide settings such as the default portal id.
	App App `envPrefix:"APP_"`

	// Portals holds the portal registry settings.
	Portals Portals `envPrefix:"PORTALS_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing.
	Args []string
}

// App holds application-level configuration.
type App struct {
	// DefaultPortal is the portal id treated as the deployment's default
	// portal (e.g. "edsc").
	// Env: APP_DEFAULT_PORTAL
	DefaultPortal string `env:"DEFAULT_PORTAL"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Portals holds the portal registry settings.
type Portals struct {
	// BasePortal is the id of the portal every other portal inherits from.
	// Env: PORTALS_BASE_PORTAL
	BasePortal string `env:"BASE_PORTAL"`

	// Dir is an optional directory of portal definitions laid out as
	// <id>/config.json or <id>/config.yaml. When empty, the definitions
	// bundled with the binary are used.
	// Env: PORTALS_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side settings for reaching the HTTP API.
type Adapter struct {
	// HTTPAddress is the address of a running portal server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration view used by the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter

	// LogLevel is the minimum level written to stderr.
	LogLevel string

	// Args holds the positional arguments (an optional portal id).
	Args []string
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetClientConfig builds the client view of the configuration from the same
// sources as [GetStructuredConfig] and validates the adapter settings.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		LogLevel: cfg.App.LogLevel,
		Args:     cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
