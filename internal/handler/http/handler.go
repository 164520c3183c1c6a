package http

import (
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/service"
)

// Handler serves the read-only portal API on top of [service.Services].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{
		services: services,
		logger:   logger,
	}
}
