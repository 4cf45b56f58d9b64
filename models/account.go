package models

import "time"

// Role is the closed set of account roles. Authorization decisions are made
// against these values only; no free-form role strings exist in the system.
type Role string

const (
	RoleArtist Role = "Artist"
	RoleFan    Role = "Fan"
	RoleAdmin  Role = "Admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleArtist, RoleFan, RoleAdmin:
		return true
	}
	return false
}

// Account represents a registered identity used for authentication and
// authorization. Username and Role are immutable after creation; the lock
// flag and failed-attempt counter are mutated only by login outcomes.
// PasswordHash must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	AccountID int64 `json:"id"`

	// Username is the unique, immutable login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role determines which operations the account may perform.
	Role Role `json:"role"`

	// IsLocked bars further login attempts once FailedAttempts reaches the
	// lockout threshold. The lock is terminal until cleared out of band.
	IsLocked bool `json:"-"`

	// FailedAttempts counts consecutive failed logins. Reset to zero on a
	// successful login.
	FailedAttempts int `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
