package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-api/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and timestamps set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenRepository persists digests of issued bearer tokens.
type TokenRepository interface {
	CreateToken(ctx context.Context, token models.Token) (models.Token, error)
	// FindUserByTokenHash returns the owner of the token with the given
	// digest together with the token itself, or [ErrTokenNotFound].
	FindUserByTokenHash(ctx context.Context, tokenHash string) (models.User, models.Token, error)
	TouchToken(ctx context.Context, tokenID int64, usedAt time.Time) error
	// DeleteUserTokens removes every token of the user and reports how many
	// were removed. Zero is not an error.
	DeleteUserTokens(ctx context.Context, userID int64) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
