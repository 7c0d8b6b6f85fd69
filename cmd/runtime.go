package cmd

import (
	"context"
	"fmt"

	"property-engine/core/config"
	"property-engine/core/database"
	"property-engine/core/dataset"
	"property-engine/core/logger"
	"property-engine/core/storage"
	"property-engine/feature/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is the wiring shared by every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	source dataset.Source
	db     *gorm.DB
	stores store.Finder
}

// newRuntime loads configuration and builds the dataset source and store directory.
// The storage client is only created for the bucket driver, the database only
// for the database store directory.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if cfg.Dataset.Driver == dataset.DriverBucket {
		rt.client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	rt.source, err = dataset.NewSource(cfg.Dataset, rt.client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}

	switch cfg.Dataset.StoreDirectory {
	case "database":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			// the store cross-reference is best effort; listings still resolve without it
			logg.Warn("Store directory database unavailable", zap.Error(err))
			break
		}
		rt.db = db
		rt.stores = store.NewDBDirectory(db)
		logg.Info("Connected to store directory database", zap.String("driver", cfg.Database.Driver))
	case "", "file":
		dir := store.NewDirectory(rt.source, logg)
		if n, err := dir.Len(context.Background()); err != nil {
			logg.Warn("Store directory not loaded, retrying on first lookup", zap.Error(err))
		} else {
			logg.Debug("Store directory ready", zap.Int("stores", n))
		}
		rt.stores = dir
	default:
		logg.Warn("Unknown store directory, store cross-reference disabled",
			zap.String("store_directory", cfg.Dataset.StoreDirectory))
	}

	logg.Debug("Dataset source ready", zap.String("source", rt.source.Describe()))
	return rt, nil
}
