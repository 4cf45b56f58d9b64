package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters and contain an uppercase letter, a lowercase letter, and a digit")
	ErrInvalidRole   = errors.New("role must be one of Artist, Fan, Admin")
)
