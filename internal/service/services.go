package service

import (
	"fmt"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/store"
	"github.com/MKhiriev/edsc-portals/models"
)

type Services struct {
	PortalService  PortalService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	portalService, err := NewPortalService(storages.PortalRegistry, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating portal service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		PortalService:  portalService,
		AppInfoService: appInfoService,
	}, nil
}
