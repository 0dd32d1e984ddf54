package storage

import (
	"context"
	"fmt"
	"log/slog"

	"birthdayreminder/internal/config"
	"birthdayreminder/internal/mongo"
	"birthdayreminder/internal/mysql"
	"birthdayreminder/pkg/birthday"
)

// Open builds the birthday repository selected by cfg.Storage. The returned
// close func releases the underlying connection and is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (birthday.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageFile:
		repo, err := birthday.NewFileRepo(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage", "backend", cfg.Storage, "path", repo.Path())
		return repo, func() {}, nil

	case config.StorageMySQL:
		db, err := mysql.LoadDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage", "backend", cfg.Storage)
		return birthday.NewMySQLRepo(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("close mysql", "error", err)
			}
		}, nil

	case config.StorageMongo:
		client, db, err := mongo.LoadDB(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage", "backend", cfg.Storage, "db", cfg.MongoDBName)
		return birthday.NewMongoRepo(db), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("close mongo", "error", err)
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}
