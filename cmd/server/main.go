package main

import (
	"context"
	"fmt"

	"github.com/dkovalev/running-log/internal/config"
	handler "github.com/dkovalev/running-log/internal/handler/http"
	"github.com/dkovalev/running-log/internal/identity"
	"github.com/dkovalev/running-log/internal/logger"
	"github.com/dkovalev/running-log/internal/server"
	"github.com/dkovalev/running-log/internal/service"
	"github.com/dkovalev/running-log/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("running-log-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	dynamoClient, err := store.NewDynamoClient(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dynamodb client")
	}
	storages := store.NewStorages(dynamoClient, cfg.Storage, log)

	cognitoClient, err := identity.NewCognitoClient(ctx, cfg.Storage.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cognito client")
	}
	provider := identity.NewCognitoProvider(cognitoClient, cfg.Identity, log)

	services := service.NewServices(*storages, provider, *cfg, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
