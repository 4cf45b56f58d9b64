package service

import (
	"context"
	"sync"
	"time"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/utils"
	"github.com/beatvault/beatvault/models"
)

// sessionService holds opaque sessions in process memory. Session keys are
// random UUIDs carrying no account information; a restart logs everyone out.
// All methods are safe for concurrent use.
type sessionService struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	logger *logger.Logger
}

// NewSessionService constructs an empty in-memory SessionService.
func NewSessionService(logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: make(map[string]models.Session),
		logger:   logger,
	}
}

// Issue implements SessionService.
func (s *sessionService) Issue(ctx context.Context, account models.Account) (models.Session, error) {
	session := models.Session{
		Key:       utils.NewSessionKey(),
		AccountID: account.AccountID,
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Key] = session
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("username", session.Username).
		Str("role", string(session.Role)).
		Msg("session issued")

	return session, nil
}

// Current implements SessionService. An empty or unknown key yields
// ErrUnauthenticated.
func (s *sessionService) Current(_ context.Context, key string) (models.Session, error) {
	if key == "" {
		return models.Session{}, ErrUnauthenticated
	}

	s.mu.RLock()
	session, ok := s.sessions[key]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrUnauthenticated
	}

	return session, nil
}

// Revoke implements SessionService.
func (s *sessionService) Revoke(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()

	return nil
}
