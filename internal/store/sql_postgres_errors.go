package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the result type returned by [ErrorClassificator.Classify].
type ErrorClass int

const (
	// ClassUnknown is the default for unrecognised errors.
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation marks a violated UNIQUE or PRIMARY KEY constraint.
	ClassUniqueViolation

	// ClassConnection marks a lost or refused connection, or a lock timeout.
	ClassConnection
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [ClassUnknown] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ClassUnknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClass] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	// Class 23 — unique_violation
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return ClassConnection

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown: // 57P01
		return ClassConnection
	}

	return ClassUnknown
}
