package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup, and the
// lockout-counter updates against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (AccountID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.Username, account.PasswordHash, account.Role)

	err := row.Scan(
		&account.AccountID,
		&account.Username,
		&account.PasswordHash,
		&account.Role,
		&account.IsLocked,
		&account.FailedAttempts,
		&account.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: account insert failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrUsernameTaken
		}
		return models.Account{}, classifyDBError(err)
	}

	return account, nil
}

// FindAccountByUsername retrieves the account whose Username matches the
// given value.
//
// Error handling:
//   - Empty result set → [ErrNoAccountWasFound].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := r.db.QueryRowContext(ctx, findAccountByUsername, username)

	err := row.Scan(
		&found.AccountID,
		&found.Username,
		&found.PasswordHash,
		&found.Role,
		&found.IsLocked,
		&found.FailedAttempts,
		&found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("error: account lookup failed")
		return models.Account{}, classifyDBError(err)
	}

	return found, nil
}

// RegisterFailedLogin performs the atomic increment of the failed-attempt
// counter via [registerFailedLogin]: the counter bump and the lock-flag
// evaluation happen in one UPDATE statement, so concurrent failed logins
// never under-count.
//
// Returns the post-increment counter and lock flag.
func (r *accountRepository) RegisterFailedLogin(ctx context.Context, accountID int64, threshold int) (int, bool, error) {
	log := logger.FromContext(ctx)

	var attempts int
	var locked bool
	row := r.db.QueryRowContext(ctx, registerFailedLogin, accountID, threshold)

	if err := row.Scan(&attempts, &locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, ErrNoAccountWasFound
		}

		log.Err(err).Str("func", "*accountRepository.RegisterFailedLogin").Msg("error: failed-login update failed")
		return 0, false, classifyDBError(err)
	}

	return attempts, locked, nil
}

// ResetFailedLogins clears the failed-attempt counter after a successful
// login. The lock flag is deliberately left untouched: a locked account never
// reaches this code path, and lockout has no automatic expiry.
func (r *accountRepository) ResetFailedLogins(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, resetFailedLogins, accountID); err != nil {
		log.Err(err).Str("func", "*accountRepository.ResetFailedLogins").Msg("error: counter reset failed")
		return classifyDBError(err)
	}

	return nil
}
