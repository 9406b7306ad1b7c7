package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-api/models"
)

const (
	usersTable  = "users"
	tokensTable = "personal_access_tokens"
)

var userColumns = []string{"user_id", "name", "email", "password_hash", "created_at", "updated_at"}

// buildCreateUserQuery builds an INSERT returning the generated user_id.
// Timestamps are taken from user so both dialects store the same values.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("name", "email", "password_hash", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildEmailExistsQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("1").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildCreateTokenQuery(b sq.StatementBuilderType, token models.Token) (string, []any, error) {
	return b.Insert(tokensTable).
		Columns("user_id", "name", "token_hash", "created_at").
		Values(token.UserID, token.Name, token.TokenHash, token.CreatedAt).
		Suffix("RETURNING token_id").
		ToSql()
}

// buildFindUserByTokenHashQuery joins the token with its owner so a bearer
// token resolves to a user in a single round trip.
func buildFindUserByTokenHashQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Select(
		"u.user_id", "u.name", "u.email", "u.password_hash", "u.created_at", "u.updated_at",
		"t.token_id", "t.name", "t.token_hash", "t.created_at", "t.last_used_at",
	).
		From(tokensTable + " t").
		Join(usersTable + " u ON u.user_id = t.user_id").
		Where(sq.Eq{"t.token_hash": tokenHash}).
		ToSql()
}

func buildTouchTokenQuery(b sq.StatementBuilderType, tokenID int64, usedAt time.Time) (string, []any, error) {
	return b.Update(tokensTable).
		Set("last_used_at", usedAt).
		Where(sq.Eq{"token_id": tokenID}).
		ToSql()
}

func buildDeleteUserTokensQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(tokensTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
