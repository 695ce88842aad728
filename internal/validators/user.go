package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login name.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldEmail targets the contact email of a new user.
	FieldEmail = "email"
)

const (
	// MaxUsernameLength is the upper bound on username length, in runes.
	MaxUsernameLength = 64
	// MaxPasswordLength bounds the hashing work a single request can cause.
	MaxPasswordLength = 1024
)

// UserValidator implements the Validator interface for registration and
// login input: models.CreateUserRequest and models.Credentials.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation by the dynamic type of obj. Both value and
// pointer forms are accepted.
//
// Supported types:
//   - models.CreateUserRequest / *models.CreateUserRequest
//     (default fields: username, password, email)
//   - models.Credentials / *models.Credentials
//     (default fields: username, password; emptiness only)
//
// Returns ErrUnsupportedType for anything else.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreateUserRequest(_ context.Context, req models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(req.Username); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks presence and the length bounds registration
// enforces: anything else about a login attempt is decided by comparing
// against the stored user.
func (v *UserValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidUsername
		}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	// reject display-name forms like "Alice <a@x.com>"
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
