package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"videosurvey/internal/config"
	"videosurvey/internal/model"
	"videosurvey/internal/platform/logger"
	"videosurvey/internal/repository"
)

// Writes the built-in questions and videos to the catalog the server starts from
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	mongoURI := cfg.MongoURI
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(ctx)

	catalog := repository.NewCatalogRepo(client.Database(cfg.MongoDB))
	defaults := model.DefaultConfiguration()
	if err := catalog.Put(ctx, repository.DefaultCatalogID, defaults); err != nil {
		log.Fatal("Failed to seed catalog", "error", err)
	}

	log.Info("Seeded catalog",
		"catalog", repository.DefaultCatalogID,
		"questions", len(defaults.Questions),
		"videos", len(defaults.Videos),
	)
}
