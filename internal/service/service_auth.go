package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against the stored password hash and delegates token
// issuance to a TokenService.
type authService struct {
	// userRepository is used to look users up by username.
	userRepository store.UserRepository

	// hasher verifies the supplied password against the stored hash.
	hasher crypto.PasswordHasher

	// validator rejects credentials with an empty username or password.
	validator validators.Validator

	// tokenService issues the access token of a successful login.
	tokenService TokenService

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. All dependencies are read-only
// after construction; the returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	tokenService TokenService,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Login authenticates a user and issues a bearer token.
//
// Returns the token and the public user view or:
//   - ErrMissingCredentials if the username or password is empty. The
//     datastore is not queried in that case.
//   - ErrWrongCredentials without a datastore query if either value is
//     longer than any registration accepts.
//   - ErrWrongCredentials if no user has that username or the password does
//     not match. Both cases look the same to the caller.
//   - ErrTokenCreation (wrapped) if signing fails.
//   - a wrapped storage error or crypto.ErrMalformedHash otherwise.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		if errors.Is(err, validators.ErrPasswordTooLong) || errors.Is(err, validators.ErrUsernameTooLong) {
			log.Debug().Err(err).Str("func", "*authService.Login").Msg("oversized credentials")
			return models.LoginResponse{}, ErrWrongCredentials
		}
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("missing credentials")
		return models.LoginResponse{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Str("username", creds.Username).Msg("unknown username")
		return models.LoginResponse{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", creds.Username).Msg("user search by username failed")
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("uuid", foundUser.UUID).Msg("stored password hash is unusable")
		return models.LoginResponse{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Str("uuid", foundUser.UUID).Msg("wrong password")
		return models.LoginResponse{}, ErrWrongCredentials
	}

	authBody, err := a.tokenService.IssueToken(ctx, foundUser)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Auth: authBody,
		User: foundUser.Public(),
	}, nil
}
