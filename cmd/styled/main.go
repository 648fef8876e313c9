package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/handler"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/server"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/store"
	"github.com/MKhiriev/go-plot-style/internal/workers"
	"github.com/MKhiriev/go-plot-style/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("style-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	services.ActiveStyle, err = service.NewActiveStyle(ctx, services.StyleService, cfg.Style, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading startup styles")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var background []workers.Worker
	if services.ActiveStyle != nil && cfg.Style.Watch {
		background = append(background, services.ActiveStyle)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, background...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
