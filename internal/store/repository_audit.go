package store

import (
	"context"
	"fmt"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository]. The audit_log table is append-only; no update or delete
// statement exists in this package.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// AppendEntry appends one audit entry. AccountID may be nil for actions that
// cannot be attributed to an account.
func (r *auditRepository) AppendEntry(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, appendAuditEntry, entry.AccountID, entry.Action, entry.OriginAddr); err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendEntry").Msg("error: audit append failed")
		return classifyDBError(err)
	}

	return nil
}

// RecentEntries returns the newest limit audit entries with the acting
// account's username joined in where the account still exists.
func (r *auditRepository) RecentEntries(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, recentAuditEntries, limit)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.RecentEntries").Msg("error: audit query failed")
		return nil, classifyDBError(err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.EntryID, &e.AccountID, &e.Username, &e.Action, &e.OriginAddr, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err)
	}

	return entries, nil
}
