package crypto

import "errors"

var (
	// ErrInvalidSalt is returned by [NewPasswordHasher] when the configured
	// salt is not exactly SaltLength bytes.
	ErrInvalidSalt = errors.New("invalid password salt")
	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// recognised encoding.
	ErrMalformedHash = errors.New("malformed password hash")
)
