package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
)

// Storages groups the repositories backed by a single database.
type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TokenRepository: NewTokenRepository(db, log),
		db:              db,
	}
}

func (s *Storages) Close() error {
	return s.db.Close()
}
