package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/handler"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/server"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("user-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLoggerWithLevel("user-registry-server", cfg.App.LogLevel)
	log.Debug().Any("config", redactedConfig(*cfg)).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.SeedDemoData {
		created, err := service.SeedDemoUsers(ctx, services.UserService)
		if err != nil {
			log.Fatal().Err(err).Msg("error seeding demo users")
		}
		log.Info().Int("created", created).Msg("demo users seeded")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// redactedConfig hides the database credentials from the debug log.
func redactedConfig(cfg config.StructuredConfig) config.StructuredConfig {
	if cfg.Storage.DB.DSN != "" {
		cfg.Storage.DB.DSN = "[REDACTED]"
	}
	return cfg
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
