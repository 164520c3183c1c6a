// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the portal API.
//
// [PortalAdapter] hides the transport from the command-line client. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/edsc-portals/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PortalAdapter talks to a running portal server.
type PortalAdapter interface {
	// ListPortals returns the summary of every registered portal.
	ListPortals(ctx context.Context) ([]models.PortalSummary, error)

	// GetPortal returns the fully resolved configuration of portalID.
	// Returns [ErrNotFound] (wrapped) for an unknown portal.
	GetPortal(ctx context.Context, portalID string) (models.PortalConfig, error)

	// IsDefaultPortal reports whether portalID is the server's default
	// portal.
	IsDefaultPortal(ctx context.Context, portalID string) (bool, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
