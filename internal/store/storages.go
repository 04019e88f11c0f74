package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// Storages aggregates the storage components handed to the service layer.
type Storages struct {
	UserStorage UserStorage

	// Driver is the configured backend name, reported by the detailed health check.
	Driver string

	db *DB
}

// NewStorages opens the backend selected by cfg.Storage.Driver. For SQL
// drivers it connects, pings and applies the embedded migrations.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	unique := cfg.App.EmailUniqueIncludingDeleted

	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		return &Storages{
			UserStorage: NewMemoryUserStorage(unique, log),
			Driver:      config.DriverMemory,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Storage.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting %s storage: %w", cfg.Storage.Driver, err)
		}
		if err = db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating %s storage: %w", cfg.Storage.Driver, err)
		}

		return &Storages{
			UserStorage: NewUserRepository(db, unique, log),
			Driver:      cfg.Storage.Driver,
			db:          db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
