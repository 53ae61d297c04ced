package config

import (
	"context"
	"fmt"
	"log/slog"

	migration "fridgemate/cmd/database/migrate"
	"fridgemate/internal/kvstore"
	"fridgemate/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDB(cfg utils.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Seoul",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// OpenStore opens the key/value store selected by STORAGE_DRIVER. The
// returned close function releases the underlying connection.
func OpenStore(ctx context.Context, cfg utils.Config, log *slog.Logger) (kvstore.KeyValueStore, func() error, error) {
	switch cfg.StorageDriver {
	case "memory":
		log.WarnContext(ctx, "using in-memory storage, data is lost on exit")
		return kvstore.NewMemoryStore(), func() error { return nil }, nil

	case "postgres":
		db, err := ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.Migrate(db); err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "connected to postgres", "host", cfg.DBHost, "database", cfg.DBName)
		return kvstore.NewGormStore(db), sqlDB.Close, nil

	case "sqlite", "":
		db, err := kvstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "opened sqlite store", "path", cfg.SQLitePath)
		return kvstore.NewSQLiteStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
