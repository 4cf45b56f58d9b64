package main

import (
	"context"
	"fmt"

	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/content"
	"github.com/beatvault/beatvault/internal/handler"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/server"
	"github.com/beatvault/beatvault/internal/service"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/internal/workers"
	"github.com/beatvault/beatvault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("beatvault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	contentStore := content.NewS3Store(cfg.Storage.Content, log)
	services := service.NewServices(storages, contentStore, cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(handlers.HTTP.Limiters()...).Run()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// The HTTP server is down; let in-flight audit appends land before exit.
	services.AuditService.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
