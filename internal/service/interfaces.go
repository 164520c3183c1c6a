package service

import (
	"context"

	"github.com/MKhiriev/edsc-portals/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PortalService resolves portal configurations against the base portal and
// the hard defaults.
type PortalService interface {
	// IsDefaultPortal reports whether portalID is exactly the deployment's
	// default portal id.
	IsDefaultPortal(portalID string) bool

	// BuildConfig deep-merges target over the base portal over the hard
	// defaults and returns a new, fully resolved config.
	BuildConfig(target models.PortalConfig) (models.PortalConfig, error)

	// ResolvePortal resolves the registered portal with the given id.
	ResolvePortal(ctx context.Context, portalID string) (models.PortalConfig, error)

	// ListPortals returns a summary of every registered portal sorted by id.
	ListPortals(ctx context.Context) ([]models.PortalSummary, error)

	// ValidateAll resolves every registered portal and reports all failures.
	ValidateAll(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
