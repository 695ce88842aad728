package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the server-assigned
	// UserID. Returns ErrUsernameAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByUUID returns ErrUserNotFound when no row matches.
	FindUserByUUID(ctx context.Context, uuid string) (models.User, error)
}

// HealthChecker reports whether the datastore answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
