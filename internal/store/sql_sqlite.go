package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a SQLite database. The pool is limited to a single
// connection: SQLite serializes writers anyway and an in-memory database
// only exists for the connection that created it.
func NewConnectSQLite(cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err = conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error enabling foreign keys")
		conn.Close()
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	return &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite. Only a
// busy or locked database is considered transient.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
