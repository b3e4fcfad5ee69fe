package server

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"finalloc/internal/config"
	"finalloc/internal/database"
	"finalloc/internal/encryption"
	"finalloc/internal/logger"
	"finalloc/internal/store"
)

// Backend is an opened record store. AuditDB is nil for the file driver.
type Backend struct {
	Store   store.Store
	AuditDB *gorm.DB

	manager *database.Manager
}

// OpenStore opens the record store selected by cfg.StoreDriver. SQL
// drivers are migrated before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (*Backend, error) {
	log := logger.Named("store")

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		m, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return migrated(m, "sqlite", cfg.SQLitePath)

	case config.DriverPostgres:
		m, err := database.OpenPostgres(database.NewConfig(cfg))
		if err != nil {
			return nil, err
		}
		return migrated(m, "postgres", cfg.DBHost+"/"+cfg.DBName)

	default:
		var c *encryption.Cipher
		if cfg.EncryptionEnabled() {
			var err error
			if c, err = encryption.New(cfg.EncryptionKey); err != nil {
				return nil, fmt.Errorf("failed to set up store encryption: %w", err)
			}
		}
		fileStore := store.NewFileStore(cfg.DataFile, c)
		if err := fileStore.Init(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
		log.Infow("record store ready", "driver", store.DriverFile, "path", fileStore.Path(), "encrypted", fileStore.Encrypted())
		return &Backend{Store: fileStore}, nil
	}
}

func migrated(m *database.Manager, driver, location string) (*Backend, error) {
	if err := m.Migrate(); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	logger.Named("store").Infow("record store ready", "driver", driver, "location", location)
	return &Backend{
		Store:   database.NewSQLStore(m.DB(), m.Driver()),
		AuditDB: m.DB(),
		manager: m,
	}, nil
}

// Close releases the database connection, if any.
func (b *Backend) Close() error {
	if b.manager == nil {
		return nil
	}
	return b.manager.Close()
}
