package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/crypto"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/internal/validators"
	"github.com/MKhiriev/go-auth-api/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHasher, cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(storages.TokenRepository, logger)
	authService := NewAuthValidationService(validators.NewUserValidator(storages.UserRepository)).
		Wrap(NewAuthService(storages.UserRepository, tokenService, hasher, cfg.App, logger))

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
