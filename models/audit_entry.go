package models

import "time"

// AuditEntry is an immutable record of a security-relevant action.
// Entries are append-only: no update or delete path exists.
type AuditEntry struct {
	// EntryID is the internal unique identifier of the entry.
	EntryID int64 `json:"id"`

	// AccountID references the acting account, or nil when the action
	// could not be attributed to one.
	AccountID *int64 `json:"account_id"`

	// Username is the acting account's username. Populated only by the
	// admin log listing, which joins the accounts table.
	Username string `json:"username,omitempty"`

	// Action describes what happened, e.g. "User Login".
	Action string `json:"action"`

	// OriginAddr is the network address the request was attributed to.
	OriginAddr string `json:"origin_addr"`

	// RecordedAt is the append timestamp.
	RecordedAt time.Time `json:"recorded_at"`
}

// TableName returns the name of the database table
// associated with the AuditEntry model.
func (e AuditEntry) TableName() string {
	return "audit_log"
}
