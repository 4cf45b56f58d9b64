package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/service"
	"github.com/beatvault/beatvault/internal/utils"
	"github.com/beatvault/beatvault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword),
			errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("registration input rejected")
			writeError(w, err)
			return
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already taken")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			writeError(w, err)
			return
		}
	}

	h.services.AuditService.Record(ctx, models.AuditEntry{
		AccountID: &account.AccountID,
		Action:    "User Registered",
	})

	session, err := h.services.SessionService.Issue(ctx, account)
	if err != nil {
		log.Err(err).Msg("issuing session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session.Key)
	if _, err := utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing registration response failed")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		// Failed attempts are audited without an account reference so an
		// attacker probing usernames leaves a trail either way.
		h.services.AuditService.Record(ctx, models.AuditEntry{
			Action: "User Login Failed: " + creds.Username,
		})

		switch {
		case errors.Is(err, service.ErrAccountLocked):
			log.Warn().Str("username", creds.Username).Msg("login rejected: account locked")
			writeError(w, err)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Str("username", creds.Username).Msg("login rejected: invalid credentials")
			writeError(w, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, err)
			return
		}
	}

	session, err := h.services.SessionService.Issue(ctx, account)
	if err != nil {
		log.Err(err).Msg("issuing session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.services.AuditService.Record(ctx, models.AuditEntry{
		AccountID: &account.AccountID,
		Action:    "User Login",
	})

	setSessionCookie(w, session.Key)
	if _, err := utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login response failed")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.services.AuditService.Record(ctx, models.AuditEntry{
		AccountID: &session.AccountID,
		Action:    "User Logout",
	})

	if err := h.services.SessionService.Revoke(ctx, session.Key); err != nil {
		log.Err(err).Msg("revoking session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// me reports the caller's current session. Having no session is a valid
// answer here, not an authentication failure: anonymous callers and stale
// keys both receive 200 with a null body.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := sessionKeyFromRequest(r)
	if err != nil {
		if _, werr := utils.WriteJSON(w, nil, http.StatusOK); werr != nil {
			log.Err(werr).Msg("writing session response failed")
		}
		return
	}

	session, err := h.services.SessionService.Current(r.Context(), key)
	if err != nil {
		if _, werr := utils.WriteJSON(w, nil, http.StatusOK); werr != nil {
			log.Err(werr).Msg("writing session response failed")
		}
		return
	}

	if _, err := utils.WriteJSON(w, session, http.StatusOK); err != nil {
		log.Err(err).Msg("writing session response failed")
	}
}

func setSessionCookie(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
