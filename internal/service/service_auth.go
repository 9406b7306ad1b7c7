package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/crypto"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/internal/validators"
	"github.com/MKhiriev/go-auth-api/models"
)

const dummyPassword = "dummy password for unknown emails"

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and logout, delegating
// password hashing to a [crypto.PasswordHasher] and token bookkeeping to a
// [TokenService].
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokenService TokenService
	hasher       crypto.PasswordHasher

	// tokenName labels every token issued on register and login.
	tokenName string

	// dummyDigest is verified against when the email is unknown so that both
	// login failure branches do the same amount of work. It is produced by the
	// configured hasher, so users whose digest predates a hasher switch are
	// verified at a different cost.
	dummyDigest func() string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenService TokenService,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
		tokenName:      cfg.TokenName,
		dummyDigest: sync.OnceValue(func() string {
			digest, err := hasher.Hash(dummyPassword)
			if err != nil {
				logger.Err(err).Msg("error hashing dummy password")
			}
			return digest
		}),
		logger: logger,
	}
}

// Register hashes the password, persists the user and issues the first token.
//
// A duplicate email that slips past validation (two concurrent registrations)
// is reported as the same [validators.ValidationErrors] the validator would
// have produced.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, string, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        models.NormalizeEmail(req.Email),
		PasswordHash: digest,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, "", validators.ValidationErrors{
			validators.FieldEmail: {validators.MsgEmailTaken},
		}
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	plaintext, _, err := a.tokenService.Issue(ctx, user, a.tokenName)
	if err != nil {
		return models.User{}, "", err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user, plaintext, nil
}

// Login verifies the credentials and issues a new token. Tokens issued
// earlier stay valid.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.Verify(req.Password, a.dummyDigest())
		log.Debug().Msg("login with unknown email")
		return "", ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	plaintext, _, err := a.tokenService.Issue(ctx, user, a.tokenName)
	if err != nil {
		return "", err
	}

	return plaintext, nil
}

func (a *authService) Logout(ctx context.Context, userID int64) error {
	_, err := a.tokenService.RevokeAll(ctx, userID)
	return err
}

func (a *authService) CurrentUser(ctx context.Context, plaintext string) (models.User, error) {
	return a.tokenService.Authenticate(ctx, plaintext)
}
