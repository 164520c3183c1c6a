package store

import (
	"slices"

	"github.com/MKhiriev/edsc-portals/models"
	"github.com/samber/lo"
)

type portalRegistry struct {
	portals map[string]models.PortalConfig
}

// NewPortalRegistry builds a registry from in-memory definitions. The
// definitions are copied, so later changes to the argument are not seen by
// the registry.
func NewPortalRegistry(portals map[string]models.PortalConfig) PortalRegistry {
	return &portalRegistry{
		portals: lo.MapValues(portals, func(cfg models.PortalConfig, _ string) models.PortalConfig {
			return cfg.Clone()
		}),
	}
}

func (r *portalRegistry) Get(portalID string) (models.PortalConfig, bool) {
	cfg, ok := r.portals[portalID]
	if !ok {
		return models.PortalConfig{}, false
	}
	return cfg.Clone(), true
}

func (r *portalRegistry) IDs() []string {
	ids := lo.Keys(r.portals)
	slices.Sort(ids)
	return ids
}

func (r *portalRegistry) Len() int {
	return len(r.portals)
}
