package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Callers must not reveal which one occurred.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountLocked is returned once the failed-attempt threshold has
	// been reached. The lock does not expire on its own.
	ErrAccountLocked = errors.New("account is locked")

	ErrUsernameTaken = errors.New("username is already taken")
	ErrWeakPassword  = errors.New("password does not meet the policy")
	ErrInvalidRole   = errors.New("unknown account role")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted for this role")

	ErrTrackNotFound = errors.New("track does not exist")

	// ErrHashingFailure signals an internal password-hashing error. It never
	// carries credential material.
	ErrHashingFailure = errors.New("password hashing failed")

	ErrInvalidTrackData = errors.New("invalid track data provided")
)
