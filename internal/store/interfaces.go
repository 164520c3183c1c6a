package store

import "github.com/MKhiriev/edsc-portals/models"

// PortalRegistry is the read-only, load-once mapping from portal id to the
// portal's own (unresolved) configuration.
type PortalRegistry interface {
	// Get returns a copy of the stored configuration for portalID. The copy
	// shares no memory with the registry.
	Get(portalID string) (models.PortalConfig, bool)

	// IDs returns every registered portal id in ascending order.
	IDs() []string

	// Len returns the number of registered portals.
	Len() int
}
