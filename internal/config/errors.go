package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty default portal id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPortalsConfigs indicates invalid portal registry settings
	// (for example, an empty base portal id).
	ErrInvalidPortalsConfigs = errors.New("invalid portals configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
