package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
	"github.com/jackc/pgerrcode"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &auditRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAppendEntry_Success(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	accountID := int64(7)
	entry := models.AuditEntry{
		AccountID:  &accountID,
		Action:     "login",
		OriginAddr: "203.0.113.9",
	}

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(entry.AccountID, entry.Action, entry.OriginAddr).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendEntry_NilAccountID(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	entry := models.AuditEntry{
		Action:     "login_failed",
		OriginAddr: "203.0.113.9",
	}

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(nil, entry.Action, entry.OriginAddr).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.AppendEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendEntry_RetryableErrorIsStoreUnavailable(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnError(pgError(pgerrcode.ConnectionDoesNotExist))

	err := repo.AppendEntry(context.Background(), models.AuditEntry{Action: "login"})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestRecentEntries_JoinsUsernames(t *testing.T) {
	repo, mock, db := newTestAuditRepo(t)
	defer db.Close()

	now := time.Now()
	accountID := int64(7)
	rows := sqlmock.
		NewRows([]string{"entry_id", "account_id", "username", "action", "origin_addr", "recorded_at"}).
		AddRow(2, accountID, "fan01", "download", "203.0.113.9", now).
		AddRow(1, nil, "", "login_failed", "198.51.100.4", now)

	mock.ExpectQuery("SELECT (.+) FROM audit_log").
		WithArgs(50).
		WillReturnRows(rows)

	entries, err := repo.RecentEntries(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Username != "fan01" {
		t.Errorf("expected joined username, got %q", entries[0].Username)
	}
	if entries[1].AccountID != nil {
		t.Error("expected nil AccountID for unattributed entry")
	}
}
