package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService registers users and reads their public profile.
type UserService interface {
	// CreateUser validates req, hashes the password and persists a new user.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)
	// GetUser returns the public profile of the user with the given UUID.
	GetUser(ctx context.Context, uuid string) (models.PublicUser, error)
}

// AuthService turns credentials into an access token.
type AuthService interface {
	// Login checks creds against the stored user and issues a token.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// IssueToken signs a token whose subject is user.UUID.
	IssueToken(ctx context.Context, user models.User) (models.AuthBody, error)
	// ValidateToken verifies tokenString and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*models.AuthClaims, error)
}
