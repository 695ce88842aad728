// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account as it is stored in the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries; use
// [User.Public] to obtain the shape that is safe to return to clients.
type User struct {
	// UserID is the internal numeric identifier assigned by the database.
	UserID int64 `json:"-"`

	// UUID is the public identifier of the user. It is used as the JWT subject.
	UUID string `json:"uuid"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the encoded password hash (PHC Argon2id or legacy bcrypt).
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table holding users.
func (u User) TableName() string {
	return "users"
}

// Public strips everything but the identifiers that may cross the API boundary.
func (u User) Public() PublicUser {
	return PublicUser{
		UUID:     u.UUID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// PublicUser is the subset of [User] returned to clients.
type PublicUser struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserRequest is the body of POST /users/create.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Credentials is the body of POST /auth/login. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
