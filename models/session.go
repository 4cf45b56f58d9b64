package models

import "time"

// Session is the server-held proof of an authenticated request context.
// It binds an opaque key to the account's identity and role for the logged-in
// lifetime. The payload deliberately excludes the password hash and the
// failed-attempt counter.
type Session struct {
	// Key is the opaque session identifier handed to the client.
	Key string `json:"-"`

	// AccountID, Username and Role identify the authenticated account.
	AccountID int64  `json:"id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`

	// CreatedAt is the login timestamp.
	CreatedAt time.Time `json:"-"`
}
