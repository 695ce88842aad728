// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite3"
)

// DB is the single connection pool of the process. It is built once in main
// and handed to every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the pool described by cfg, applies pool limits and pings
// the database. The driver is picked from the DSN:
//
//	postgres://... , postgresql://...  -> pgx
//	sqlite://path , sqlite::memory: , file:...  -> sqlite3
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dialect, source, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error parsing database DSN")
		return nil, err
	}

	if dialect == DialectSQLite {
		if err = ensureSQLiteDir(source); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database directory")
			return nil, err
		}
	}

	// establish connection
	conn, err := sql.Open(driver, source)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if dialect == DialectSQLite {
		// one writer; also keeps an in-memory database alive
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxIdleTime(0)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
		conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", "NewConnect").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return newDB(conn, dialect, log), nil
}

// newDB wraps an open pool. Tests use it with sqlmock.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the SQL flavour of the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func parseDSN(dsn string) (driver string, dialect Dialect, source string, err error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPgx, DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		source = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		source = strings.TrimPrefix(dsn, "sqlite:")
	case strings.HasPrefix(dsn, "file:"):
		source = dsn
	default:
		return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
	}

	if source == "" {
		return "", "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
	}

	return driverSQLite, DialectSQLite, source, nil
}

// ensureSQLiteDir creates the parent directory of a file-backed database.
// The driver creates the file itself.
func ensureSQLiteDir(source string) error {
	if strings.HasPrefix(source, ":memory:") || strings.HasPrefix(source, "file:") {
		return nil
	}

	path, _, _ := strings.Cut(source, "?")
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	return nil
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}
