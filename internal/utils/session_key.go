package utils

import "github.com/google/uuid"

// NewSessionKey generates an opaque session key. Keys are time-ordered v7
// UUIDs when available, falling back to v4 on entropy failure; either way
// they carry no account information.
func NewSessionKey() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
