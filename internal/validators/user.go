package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-api/models"
)

const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 6
	// bcrypt ignores everything after the 72nd byte
	maxPasswordBytes = 72
)

const (
	MsgNameRequired        = "The name field is required."
	MsgNameTooLong         = "The name may not be greater than 255 characters."
	MsgEmailRequired       = "The email field is required."
	MsgEmailInvalid        = "The email must be a valid email address."
	MsgEmailTooLong        = "The email may not be greater than 255 characters."
	MsgEmailTaken          = "The email has already been taken."
	MsgPasswordRequired    = "The password field is required."
	MsgPasswordTooShort    = "The password must be at least 6 characters."
	MsgPasswordTooLong     = "The password may not be greater than 72 bytes."
	MsgPasswordMismatch    = "The password confirmation does not match."
	MsgConfirmationMissing = "The password confirmation field is required."
)

var (
	registerFields = []string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirmation}
	loginFields    = []string{FieldEmail, FieldPassword}
)

// UserValidator validates registration and login requests.
type UserValidator struct {
	emails EmailChecker
}

// NewUserValidator returns a validator that consults emails for the
// uniqueness rule of registration.
func NewUserValidator(emails EmailChecker) *UserValidator {
	return &UserValidator{emails: emails}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserValidator) ValidateRegister(ctx context.Context, req models.RegisterRequest) error {
	return v.validateRegister(ctx, req)
}

func (v *UserValidator) ValidateLogin(_ context.Context, req models.LoginRequest) error {
	return v.validateLogin(req)
}

func (v *UserValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	fields, err := resolveFields(fields, registerFields)
	if err != nil {
		return err
	}

	errs := make(ValidationErrors)
	for _, field := range fields {
		switch field {
		case FieldName:
			switch {
			case strings.TrimSpace(req.Name) == "":
				errs.Add(FieldName, MsgNameRequired)
			case utf8.RuneCountInString(req.Name) > maxNameLength:
				errs.Add(FieldName, MsgNameTooLong)
			}

		case FieldEmail:
			if !checkEmailFormat(errs, req.Email) {
				continue
			}
			exists, err := v.emails.EmailExists(ctx, models.NormalizeEmail(req.Email))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrCheckingEmail, err)
			}
			if exists {
				errs.Add(FieldEmail, MsgEmailTaken)
			}

		case FieldPassword:
			if !checkPassword(errs, req.Password) {
				continue
			}
			if req.PasswordConfirmation != "" && req.Password != req.PasswordConfirmation {
				errs.Add(FieldPassword, MsgPasswordMismatch)
			}

		case FieldPasswordConfirmation:
			if req.PasswordConfirmation == "" {
				errs.Add(FieldPasswordConfirmation, MsgConfirmationMissing)
			}
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	fields, err := resolveFields(fields, loginFields)
	if err != nil {
		return err
	}

	errs := make(ValidationErrors)
	for _, field := range fields {
		switch field {
		case FieldEmail:
			checkEmailFormat(errs, req.Email)
		case FieldPassword:
			if req.Password == "" {
				errs.Add(FieldPassword, MsgPasswordRequired)
			}
		}
	}

	return errs.Err()
}

// checkEmailFormat records format violations and reports whether the email
// passed them. Surrounding whitespace is ignored, as it is on storage.
func checkEmailFormat(errs ValidationErrors, email string) bool {
	email = strings.TrimSpace(email)

	switch {
	case email == "":
		errs.Add(FieldEmail, MsgEmailRequired)
	case utf8.RuneCountInString(email) > maxEmailLength:
		errs.Add(FieldEmail, MsgEmailTooLong)
	case !isEmail(email):
		errs.Add(FieldEmail, MsgEmailInvalid)
	default:
		return true
	}
	return false
}

func checkPassword(errs ValidationErrors, password string) bool {
	switch {
	case password == "":
		errs.Add(FieldPassword, MsgPasswordRequired)
	case utf8.RuneCountInString(password) < minPasswordLength:
		errs.Add(FieldPassword, MsgPasswordTooShort)
	case len(password) > maxPasswordBytes:
		errs.Add(FieldPassword, MsgPasswordTooLong)
	default:
		return true
	}
	return false
}

// isEmail accepts a bare addr-spec only: display names and angle brackets
// are rejected.
func isEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Name == "" && addr.Address == email
}

func resolveFields(requested, known []string) ([]string, error) {
	if len(requested) == 0 {
		return known, nil
	}
	for _, f := range requested {
		if !slices.Contains(known, f) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return requested, nil
}
