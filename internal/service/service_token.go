// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/crypto"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/models"
)

// tokenService is the concrete implementation of [TokenService]. Plaintext
// tokens never reach the store: only their SHA-256 digest is persisted and
// looked up.
type tokenService struct {
	tokenRepository store.TokenRepository

	generate func() (plaintext, digest string, err error)
	now      func() time.Time

	logger *logger.Logger
}

func NewTokenService(tokenRepository store.TokenRepository, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenRepository: tokenRepository,
		generate:        crypto.GenerateToken,
		now:             time.Now,
		logger:          logger,
	}
}

// Issue mints a token bound to user and returns the plaintext together with
// the stored record.
func (s *tokenService) Issue(ctx context.Context, user models.User, name string) (string, models.Token, error) {
	log := logger.FromContext(ctx)

	plaintext, digest, err := s.generate()
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error generating token")
		return "", models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := s.tokenRepository.CreateToken(ctx, models.Token{
		UserID:    user.UserID,
		Name:      name,
		TokenHash: digest,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error saving token")
		return "", models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return plaintext, token, nil
}

// RevokeAll deletes every token of the user. Revoking a user without tokens
// succeeds and reports zero.
func (s *tokenService) RevokeAll(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.tokenRepository.DeleteUserTokens(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error revoking tokens")
		return 0, fmt.Errorf("error revoking tokens: %w", err)
	}

	log.Debug().Int64("user_id", userID).Int64("revoked", deleted).Msg("tokens revoked")
	return deleted, nil
}

// Authenticate hashes plaintext unconditionally, so absent, malformed and
// unknown tokens all take the same path to [ErrUnauthenticated].
// Recording last use is best effort and never fails the call.
func (s *tokenService) Authenticate(ctx context.Context, plaintext string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, token, err := s.tokenRepository.FindUserByTokenHash(ctx, crypto.HashToken(plaintext))
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Msg("error looking up token")
		return models.User{}, fmt.Errorf("error looking up token: %w", err)
	}

	if err = s.tokenRepository.TouchToken(ctx, token.TokenID, s.now()); err != nil {
		log.Warn().Err(err).Int64("token_id", token.TokenID).Msg("error recording token use")
	}

	return user, nil
}
