package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/models"
)

// appendTimeout bounds a background audit append. The entry is written with
// its own deadline so a cancelled request context cannot abort it.
const appendTimeout = 5 * time.Second

// defaultAuditLimit bounds the admin log listing when the caller does not
// supply a limit.
const defaultAuditLimit = 100

// auditService is the concrete implementation of AuditService. Appends run
// in the background: audit failures are an observability loss, never a
// reason to fail the acting request.
type auditService struct {
	auditRepository store.AuditRepository

	// wg tracks in-flight background appends so tests and shutdown can
	// wait for them.
	wg sync.WaitGroup

	logger *logger.Logger
}

// NewAuditService constructs an AuditService over the given repository.
func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) *auditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Record implements AuditService. The entry inherits request metadata from
// ctx synchronously; the database append happens on a fresh context in the
// background.
func (a *auditService) Record(ctx context.Context, entry models.AuditEntry) {
	if entry.OriginAddr == "" {
		if origin, ok := originFromContext(ctx); ok {
			entry.OriginAddr = origin
		}
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		appendCtx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		defer cancel()

		if err := a.auditRepository.AppendEntry(appendCtx, entry); err != nil {
			a.logger.Err(err).
				Str("action", entry.Action).
				Msg("audit append failed; entry dropped")
		}
	}()
}

// Recent implements AuditService.
func (a *auditService) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	entries, err := a.auditRepository.RecentEntries(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("audit listing failed")
		return nil, fmt.Errorf("audit listing failed: %w", err)
	}

	return entries, nil
}

// Wait blocks until all background appends started so far have finished.
// Called during graceful shutdown.
func (a *auditService) Wait() {
	a.wg.Wait()
}
