package store

import "github.com/MKhiriev/go-auth-keeper/internal/logger"

// Storages groups the repositories built on one connection pool.
type Storages struct {
	UserRepository UserRepository
	HealthChecker  HealthChecker
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		HealthChecker:  db,
	}
}
