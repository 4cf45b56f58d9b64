package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/models"
)

// fakeAccountRepository is an in-memory store.AccountRepository with the
// same atomicity guarantees as the real one.
type fakeAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	nextID   int64

	createErr error
	findErr   error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: make(map[string]*models.Account), nextID: 1}
}

func (f *fakeAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return models.Account{}, f.createErr
	}
	if _, exists := f.accounts[account.Username]; exists {
		return models.Account{}, store.ErrUsernameTaken
	}

	account.AccountID = f.nextID
	f.nextID++
	f.accounts[account.Username] = &account
	return account, nil
}

func (f *fakeAccountRepository) FindAccountByUsername(_ context.Context, username string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return models.Account{}, f.findErr
	}
	account, ok := f.accounts[username]
	if !ok {
		return models.Account{}, store.ErrNoAccountWasFound
	}
	return *account, nil
}

func (f *fakeAccountRepository) RegisterFailedLogin(_ context.Context, accountID int64, threshold int) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.AccountID == accountID {
			account.FailedAttempts++
			if account.FailedAttempts >= threshold {
				account.IsLocked = true
			}
			return account.FailedAttempts, account.IsLocked, nil
		}
	}
	return 0, false, store.ErrNoAccountWasFound
}

func (f *fakeAccountRepository) ResetFailedLogins(_ context.Context, accountID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.AccountID == accountID {
			account.FailedAttempts = 0
			return nil
		}
	}
	return store.ErrNoAccountWasFound
}

func newTestAuthService(repo store.AccountRepository) AuthService {
	return NewAuthService(repo, config.App{BcryptCost: bcrypt.MinCost}, logger.Nop())
}

func TestRegister_Success(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepository())

	account, err := svc.Register(context.Background(), models.Credentials{
		Username: "mc.ride",
		Password: "Passw0rd",
		Role:     models.RoleArtist,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountID == 0 {
		t.Error("expected server-assigned AccountID")
	}
	if account.PasswordHash == "Passw0rd" {
		t.Error("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("Passw0rd")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepository())

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1"},
		{name: "no uppercase", password: "passw0rd"},
		{name: "no lowercase", password: "PASSW0RD"},
		{name: "no digit", password: "Password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), models.Credentials{
				Username: "mc.ride",
				Password: tt.password,
				Role:     models.RoleFan,
			})
			if !errors.Is(err, ErrWeakPassword) {
				t.Errorf("expected ErrWeakPassword, got %v", err)
			}
		})
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepository())

	_, err := svc.Register(context.Background(), models.Credentials{
		Username: "mc.ride",
		Password: "Passw0rd",
		Role:     "Owner",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepository())
	ctx := context.Background()

	creds := models.Credentials{Username: "mc.ride", Password: "Passw0rd", Role: models.RoleArtist}
	if _, err := svc.Register(ctx, creds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, creds)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd", Role: models.RoleFan}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	account, err := svc.Login(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Username != "fan01" || account.Role != models.RoleFan {
		t.Errorf("unexpected account: %+v", account)
	}
}

func TestLogin_UnknownUsernameMatchesWrongPassword(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd", Role: models.RoleFan}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, unknownErr := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "Passw0rd"})
	_, wrongErr := svc.Login(ctx, models.Credentials{Username: "fan01", Password: "WrongPas5"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown username, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Error("unknown-username and wrong-password errors must be indistinguishable")
	}
}

func TestLogin_ThirdFailureLocks(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd", Role: models.RoleFan}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := models.Credentials{Username: "fan01", Password: "WrongPas5"}

	for i := 0; i < 2; i++ {
		if _, err := svc.Login(ctx, bad); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// The attempt that reaches the threshold reports the lockout.
	if _, err := svc.Login(ctx, bad); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("attempt 3: expected ErrAccountLocked, got %v", err)
	}

	// Locked is terminal, even with the correct password.
	if _, err := svc.Login(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd"}); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("expected ErrAccountLocked with correct password, got %v", err)
	}
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd", Role: models.RoleFan}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := models.Credentials{Username: "fan01", Password: "WrongPas5"}
	good := models.Credentials{Username: "fan01", Password: "Passw0rd"}

	for i := 0; i < 2; i++ {
		if _, err := svc.Login(ctx, bad); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	account, err := svc.Login(ctx, good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.FailedAttempts != 0 {
		t.Errorf("expected counter reset, got %d", account.FailedAttempts)
	}

	// The reset gives the account a fresh allowance.
	for i := 0; i < 2; i++ {
		if _, err := svc.Login(ctx, bad); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("post-reset attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}
}

func TestLogin_ConcurrentFailuresLockExactlyOnce(t *testing.T) {
	repo := newFakeAccountRepository()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.Credentials{Username: "fan01", Password: "Passw0rd", Role: models.RoleFan}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Login(ctx, models.Credentials{Username: "fan01", Password: "WrongPas5"})
		}(i)
	}
	wg.Wait()

	account, err := repo.FindAccountByUsername(ctx, "fan01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.IsLocked {
		t.Error("expected account to end up locked")
	}

	for i, e := range errs {
		if !errors.Is(e, ErrInvalidCredentials) && !errors.Is(e, ErrAccountLocked) {
			t.Errorf("attempt %d: unexpected error %v", i, e)
		}
	}
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepository())

	_, err := svc.Login(context.Background(), models.Credentials{})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
