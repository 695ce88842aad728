package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

var usersTable = models.User{}.TableName()

// userColumns is the column order every user SELECT scans in.
var userColumns = []string{"id", "uuid", "username", "password", "email", "created_at"}

// buildInsertUserQuery builds the INSERT for a new user. The database assigns
// the numeric id and hands it back through RETURNING.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("uuid", "username", "password", "email", "created_at").
		Values(user.UUID, user.Username, user.PasswordHash, user.Email, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return buildSelectUserQuery(b, sq.Eq{"username": username})
}

func buildSelectUserByUUIDQuery(b sq.StatementBuilderType, uuid string) (string, []any, error) {
	return buildSelectUserQuery(b, sq.Eq{"uuid": uuid})
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
