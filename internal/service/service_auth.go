package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/internal/validators"
	"github.com/beatvault/beatvault/models"
)

// lockoutThreshold is the number of consecutive failed logins after which an
// account is locked. The lock is terminal until an operator intervenes.
const lockoutThreshold = 3

// authService is the concrete implementation of AuthService.
// It handles account registration and credential verification using an
// AccountRepository for persistence and bcrypt for password hashing.
type authService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts and to track their lockout state.
	accountRepository store.AccountRepository

	// validator enforces username, password-policy, and role rules on
	// registration input.
	validator validators.Validator

	// hasher derives and verifies bcrypt password hashes.
	hasher *passwordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// AccountRepository and configured with the bcrypt work factor from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		validator:         validators.NewCredentialsValidator(),
		hasher:            newPasswordHasher(cfg.BcryptCost),
		logger:            logger,
	}
}

// Register creates a new account.
//
// The username must be non-empty and unused, the password must satisfy the
// policy, and the role must be one of the known roles. The plaintext password
// is hashed before it touches the repository and is never logged.
//
// Returns the persisted account (with a server-assigned AccountID) or:
//   - ErrWeakPassword / ErrInvalidRole / ErrInvalidCredentials for rejected input.
//   - ErrUsernameTaken if the username is already registered.
//   - ErrHashingFailure if bcrypt fails internally.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Str("username", creds.Username).Err(err).Msg("registration input rejected")
		return models.Account{}, mapValidationError(err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error: password hashing failed")
		return models.Account{}, err
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         creds.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.Account{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", creds.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login authenticates an existing account.
//
// The lockout check runs before password verification so a locked account
// never burns bcrypt time, and an unknown username yields the same
// ErrInvalidCredentials as a wrong password.
//
// A failed verification increments the account's failure counter atomically;
// the attempt that reaches the threshold reports ErrAccountLocked instead of
// ErrInvalidCredentials. A successful verification resets the counter.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.Account{}, ErrInvalidCredentials
	}

	account, err := a.accountRepository.FindAccountByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoAccountWasFound) {
			return models.Account{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if account.IsLocked {
		log.Warn().Str("username", account.Username).Msg("login attempt on locked account")
		return models.Account{}, ErrAccountLocked
	}

	ok, err := a.hasher.Verify(account.PasswordHash, creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error: password verification failed")
		return models.Account{}, err
	}

	if !ok {
		attempts, locked, ferr := a.accountRepository.RegisterFailedLogin(ctx, account.AccountID, lockoutThreshold)
		if ferr != nil {
			log.Err(ferr).Str("username", account.Username).Msg("recording failed login attempt failed")
			return models.Account{}, fmt.Errorf("recording failed login attempt failed: %w", ferr)
		}

		log.Warn().
			Str("username", account.Username).
			Int("attempts", attempts).
			Bool("locked", locked).
			Msg("failed login attempt")

		if locked {
			return models.Account{}, ErrAccountLocked
		}
		return models.Account{}, ErrInvalidCredentials
	}

	if account.FailedAttempts > 0 {
		if rerr := a.accountRepository.ResetFailedLogins(ctx, account.AccountID); rerr != nil {
			log.Err(rerr).Str("username", account.Username).Msg("resetting failed login counter failed")
		} else {
			account.FailedAttempts = 0
		}
	}

	return account, nil
}

// mapValidationError translates validator sentinels into this package's
// error taxonomy.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrWeakPassword):
		return ErrWeakPassword
	case errors.Is(err, validators.ErrInvalidRole):
		return ErrInvalidRole
	default:
		return ErrInvalidCredentials
	}
}
