// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] over the
// "personal_access_tokens" table. Only token digests are ever stored.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tokenRepository) CreateToken(ctx context.Context, token models.Token) (models.Token, error) {
	log := logger.FromContext(ctx)

	token.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	token.LastUsedAt = nil

	query, args, err := buildCreateTokenQuery(r.db.builder, token)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Msg("error building query")
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&token.TokenID); err != nil {
		if isUniqueViolation(err) {
			log.Err(err).Str("func", "*tokenRepository.CreateToken").Msg("token digest collision")
			return models.Token{}, ErrTokenAlreadyExists
		}
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Msg("error inserting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return token, nil
}

func (r *tokenRepository) FindUserByTokenHash(ctx context.Context, tokenHash string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByTokenHashQuery(r.db.builder, tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenHash").Msg("error building query")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var token models.Token
	var lastUsedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
		&token.TokenID, &token.Name, &token.TokenHash, &token.CreatedAt, &lastUsedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, models.Token{}, ErrTokenNotFound
	case err != nil:
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenHash").Msg("error selecting token")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token.UserID = user.UserID
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}

	return user, token, nil
}

func (r *tokenRepository) TouchToken(ctx context.Context, tokenID int64, usedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchTokenQuery(r.db.builder, tokenID, usedAt.UTC().Truncate(time.Microsecond))
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.TouchToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.TouchToken").Msg("error updating last_used_at")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) DeleteUserTokens(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserTokensQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteUserTokens").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteUserTokens").Msg("error deleting tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteUserTokens").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
