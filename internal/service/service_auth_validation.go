package service

import (
	"context"

	"github.com/MKhiriev/go-auth-api/internal/validators"
	"github.com/MKhiriev/go-auth-api/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService runs request validation in front of the wrapped
// [AuthService]. Validation failures are returned unwrapped so callers can
// extract [validators.ValidationErrors] with errors.As.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, "", err
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidDataProvided
	}

	return v.inner.Logout(ctx, userID)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, plaintext string) (models.User, error) {
	return v.inner.CurrentUser(ctx, plaintext)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
