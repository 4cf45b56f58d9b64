package validators

import (
	"context"
	"fmt"
	"unicode"

	"github.com/beatvault/beatvault/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
)

// minPasswordLength is the minimum accepted password length, in runes.
const minPasswordLength = 8

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if !StrongPassword(creds.Password) {
				return ErrWeakPassword
			}
		case FieldRole:
			if !creds.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// StrongPassword reports whether password satisfies the account password
// policy: at least 8 characters with at least one uppercase letter, one
// lowercase letter, and one digit.
func StrongPassword(password string) bool {
	runes := []rune(password)
	if len(runes) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}
