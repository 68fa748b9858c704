// Command seed loads the built-in catalog into MongoDB.
package main

import (
	"context"
	"flag"
	"time"

	"findmylocal/config"
	"findmylocal/database"
	catalogRepo "findmylocal/database/repository/catalog"
	"findmylocal/utils"

	"go.uber.org/zap"
)

func main() {
	reset := flag.Bool("reset", false, "drop existing services before seeding")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("seed: mongo unavailable", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	repo := catalogRepo.NewMongoCatalogRepo(client, config.AppConfig.DatabaseName)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("seed: failed to create indexes", zap.Error(err))
	}

	services := catalogRepo.SeedServices()
	if *reset {
		if err := repo.Reset(ctx, services); err != nil {
			logger.Fatal("seed: reset failed", zap.Error(err))
		}
		logger.Info("seed: catalog reset", zap.Int("services", len(services)))
		return
	}

	inserted, err := repo.EnsureSeeded(ctx, services)
	if err != nil {
		logger.Fatal("seed: failed", zap.Error(err))
	}
	if inserted {
		logger.Info("seed: catalog inserted", zap.Int("services", len(services)))
	} else {
		logger.Info("seed: catalog already present, nothing to do")
	}
}
