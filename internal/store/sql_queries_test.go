// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		UUID:         "u-1",
		Username:     "alice",
		PasswordHash: "hash",
		Email:        "a@x.com",
		CreatedAt:    time.Unix(0, 0).UTC(),
	}

	query, args, err := buildInsertUserQuery(dollarBuilder, user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (uuid,username,password,email,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		query)
	assert.Equal(t, []any{user.UUID, user.Username, user.PasswordHash, user.Email, user.CreatedAt}, args)
}

func Test_buildInsertUserQuery_QuestionPlaceholders(t *testing.T) {
	query, args, err := buildInsertUserQuery(questionBuilder, models.User{})
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?,?)")
	assert.NotContains(t, query, "$1")
	assert.Len(t, args, 5)
}

func Test_buildSelectUserByUsernameQuery(t *testing.T) {
	query, args, err := buildSelectUserByUsernameQuery(dollarBuilder, "alice")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, uuid, username, password, email, created_at FROM users WHERE username = $1 LIMIT 1",
		query)
	require.Len(t, args, 1)
	assert.Equal(t, "alice", args[0])
}

func Test_buildSelectUserByUUIDQuery(t *testing.T) {
	query, args, err := buildSelectUserByUUIDQuery(questionBuilder, "u-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where uuid = ?")
	assert.Equal(t, []any{"u-1"}, args)
}

// Test_userColumnsMatchScanOrder guards the column order findOne scans into.
func Test_userColumnsMatchScanOrder(t *testing.T) {
	assert.Equal(t, []string{"id", "uuid", "username", "password", "email", "created_at"}, userColumns)
}
