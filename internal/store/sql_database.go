package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
)

const connectRetryBase = 500 * time.Millisecond

// DB wraps a connection pool together with everything repositories need to
// talk to a particular SQL dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for cfg.Driver and pings it, retrying transient
// failures up to cfg.ConnectRetries times with exponential backoff.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(connectRetryBase))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingErr := db.PingContext(ctx)
		if pingErr == nil {
			return nil
		}
		if db.isRetryable(pingErr) {
			log.Warn().Err(pingErr).Str("func", "NewConnect").Msg("database is not ready, retrying")
			return retry.RetryableError(pingErr)
		}
		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		db.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")
	return db, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

func (db *DB) isRetryable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation reports whether err is a UNIQUE constraint violation
// for either supported driver.
func isUniqueViolation(err error) bool {
	return isPostgresUniqueViolation(err) || isSQLiteUniqueViolation(err)
}
