// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Beatvault Authors

package http

import "errors"

// Sentinel errors used by the session middleware when extracting the session
// key from an incoming request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoSessionKey is returned when the request carries neither the
	// session cookie nor an "Authorization" header.
	ErrNoSessionKey = errors.New("no session key presented")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the key value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptySessionKey is returned when the cookie or header is present
	// but its value is an empty string.
	ErrEmptySessionKey = errors.New("empty session key")
)
