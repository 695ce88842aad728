package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes passwords at registration time and verifies supplied
// passwords at login time. It performs no I/O.
type PasswordHasher interface {
	// Hash returns the encoded hash of password. With the legacy fixed-salt
	// mode enabled the result is deterministic; otherwise every call uses a
	// fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	// A mismatch returns (false, nil). A hash that cannot be parsed returns
	// (false, ErrMalformedHash) so callers can tell a broken record from a
	// wrong password.
	Verify(password, encoded string) (bool, error)
}
