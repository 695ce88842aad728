package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	uuidGenerator  *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		uuidGenerator:  utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// The request is validated, the password is hashed and a UUIDv7 is assigned
// before the row is written. The plaintext password never leaves this method.
//
// Returns the public view of the stored user or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - store.ErrUsernameAlreadyExists (wrapped) for a taken username.
//   - a wrapped storage or hashing error otherwise.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*userService.CreateUser").Str("username", req.Username).Msg("invalid user data provided")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.PublicUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UUID:         s.uuidGenerator.Generate(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		CreatedAt:    s.now().UTC(),
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", user.Username).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Str("uuid", createdUser.UUID).Msg("user created")
	return createdUser.Public(), nil
}

// GetUser returns the public profile of the user identified by uuid.
func (s *userService) GetUser(ctx context.Context, uuid string) (models.PublicUser, error) {
	if !utils.IsValidUUID(uuid) {
		return models.PublicUser{}, ErrInvalidUUID
	}

	user, err := s.userRepository.FindUserByUUID(ctx, uuid)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("uuid", uuid).Msg("user search by uuid failed")
		return models.PublicUser{}, fmt.Errorf("user search by uuid failed: %w", err)
	}

	return user.Public(), nil
}
