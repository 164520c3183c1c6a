package main

import (
	"context"
	"os"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/handler"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/server"
	"github.com/MKhiriev/edsc-portals/internal/service"
	"github.com/MKhiriev/edsc-portals/internal/store"
	"github.com/MKhiriev/edsc-portals/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stderr)

	log := logger.NewLogger("portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Portals, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.PortalService.ValidateAll(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("portal registry is invalid")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
