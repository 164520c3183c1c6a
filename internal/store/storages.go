package store

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/portals"
)

type Storages struct {
	PortalRegistry PortalRegistry
}

// NewStorages loads the portal registry from cfg.Dir, or from the bundled
// definitions when cfg.Dir is empty.
func NewStorages(cfg config.Portals, logger *logger.Logger) (*Storages, error) {
	var fsys fs.FS = portals.FS
	source := "bundled"
	if cfg.Dir != "" {
		fsys = os.DirFS(cfg.Dir)
		source = cfg.Dir
	}

	logger.Info().Str("source", source).Msg("loading portal registry...")

	registry, err := LoadPortalRegistry(fsys, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading portal registry from %s: %w", source, err)
	}

	logger.Info().Int("portals", registry.Len()).Strs("ids", registry.IDs()).Msg("portal registry loaded")

	return &Storages{PortalRegistry: registry}, nil
}
