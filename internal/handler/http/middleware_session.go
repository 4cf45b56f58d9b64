package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/utils"
)

// sessionCookieName is the cookie carrying the opaque session key.
const sessionCookieName = "bv_session"

// session is an HTTP middleware that enforces session-based authentication.
//
// It extracts the opaque session key from the request (cookie first, then
// "Authorization: Bearer" header), resolves it via
// [service.SessionService.Current], and on success stores the session in the
// request context under [utils.SessionCtxKey] before delegating to the next
// handler.
//
// Requests with a missing, empty, or unknown key are rejected with
// HTTP 401 Unauthorized. Rejections are logged via [logger.FromRequest].
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key, err := sessionKeyFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Current(ctx, key)
		if err != nil {
			log.Err(err).Msg("session key did not resolve")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the session in the context so downstream handlers can
		// retrieve it without resolving the key again.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionKeyFromRequest extracts the session key from the cookie or, failing
// that, from a standard "Authorization: Bearer <key>" header.
func sessionKeyFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptySessionKey
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionKey
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	if parts[1] == "" {
		return "", ErrEmptySessionKey
	}

	return parts[1], nil
}
