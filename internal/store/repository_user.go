package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned UserID.
//
// Error handling:
//   - unique violation (pgx 23505 / sqlite CONSTRAINT_UNIQUE) → [ErrUsernameAlreadyExists].
//   - connection failure → wrapped [ErrDatabaseUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return models.User{}, r.mapError(err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByUUID retrieves the user by public identifier.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUUID(ctx context.Context, uuid string) (models.User, error) {
	query, args, err := buildSelectUserByUUIDQuery(r.db.builder, uuid)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByUUID").Msg("error building query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByUUID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&foundUser.UserID,
		&foundUser.UUID,
		&foundUser.Username,
		&foundUser.PasswordHash,
		&foundUser.Email,
		&foundUser.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("no user was found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, r.mapError(err)
	}

	return foundUser, nil
}

func (r *userRepository) mapError(err error) error {
	switch r.db.errorClassificator.Classify(err) {
	case ClassUniqueViolation:
		return ErrUsernameAlreadyExists
	case ClassConnection:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
