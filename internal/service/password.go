package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher wraps bcrypt with a configured work factor. Verification
// failures distinguish a mismatch from an internal error so callers can keep
// the two on separate paths.
type passwordHasher struct {
	cost int
}

func newPasswordHasher(cost int) *passwordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &passwordHasher{cost: cost}
}

// Hash derives a bcrypt hash of password.
func (h *passwordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch returns
// (false, nil); only internal hashing errors populate err.
func (h *passwordHasher) Verify(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %w", ErrHashingFailure, err)
}
