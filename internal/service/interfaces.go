package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-api/models"
)

// AuthService implements the account operations exposed over HTTP.
type AuthService interface {
	// Register creates the account and issues its first token. The
	// plaintext token is returned exactly once.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, string, error)

	// Login returns a freshly issued plaintext token. Unknown email and wrong
	// password both yield [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Logout revokes every token of the user.
	Logout(ctx context.Context, userID int64) error

	// CurrentUser resolves a plaintext bearer token to its owner.
	CurrentUser(ctx context.Context, plaintext string) (models.User, error)
}

// TokenService issues, resolves and revokes opaque bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User, name string) (string, models.Token, error)
	RevokeAll(ctx context.Context, userID int64) (int64, error)
	// Authenticate returns the owner of plaintext or [ErrUnauthenticated].
	Authenticate(ctx context.Context, plaintext string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
