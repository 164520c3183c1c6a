package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/edsc-portals/internal/adapter"
	"github.com/MKhiriev/edsc-portals/internal/client"
	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewConsoleLogger("portal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	app, err := client.NewApp(portalAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
