package service

import (
	"context"

	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/models"
)

type AuthService interface {
	// Register creates a new account after checking username, password
	// policy, and role.
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Login verifies credentials and enforces the failed-attempt lockout.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)
}

type SessionService interface {
	// Issue mints an opaque session for an authenticated account.
	Issue(ctx context.Context, account models.Account) (models.Session, error)

	// Current resolves a session key presented by a client.
	Current(ctx context.Context, key string) (models.Session, error)

	// Revoke invalidates the session key. Revoking an unknown key is a no-op.
	Revoke(ctx context.Context, key string) error
}

type CatalogService interface {
	// Upload registers a new track for the artist and returns the stored
	// track together with a presigned URL the client PUTs the bytes to.
	Upload(ctx context.Context, artist models.Session, input TrackUpload) (models.Track, string, error)

	// List returns the public catalog, optionally filtered.
	List(ctx context.Context, filter store.TrackFilter) ([]models.Track, error)

	// Trending returns the best-selling tracks.
	Trending(ctx context.Context, limit int) ([]models.Track, error)

	// Performance returns every sale of the artist's tracks.
	Performance(ctx context.Context, artist models.Session) ([]models.SaleRecord, error)
}

// TrackUpload is the artist-supplied portion of a new track.
type TrackUpload struct {
	Title       string             `json:"title"`
	ReleaseType models.ReleaseType `json:"release_type"`
	Genre       string             `json:"genre"`
}

type PurchaseService interface {
	// Acquire grants the caller a download of the track, recording a sale on
	// first acquisition. Any authenticated role may acquire; repeat
	// acquisitions are free and idempotent.
	Acquire(ctx context.Context, buyer models.Session, trackID int64) (AcquireResult, error)
}

// AcquireResult is the outcome of a download request.
type AcquireResult struct {
	// DownloadURL is a short-lived presigned URL for the track bytes.
	DownloadURL string `json:"download_url"`

	// Amount is the track's fixed price.
	Amount int64 `json:"amount"`

	// Charged reports whether this request created the sale record. False
	// means the fan already owned the track and was not charged again.
	Charged bool `json:"charged"`
}

type AuditService interface {
	// Record appends an audit entry without blocking the caller. Append
	// failures are logged and never surfaced to the acting request.
	Record(ctx context.Context, entry models.AuditEntry)

	// Recent returns the newest audit entries for administrative review.
	Recent(ctx context.Context, limit int) ([]models.AuditEntry, error)

	// Wait blocks until every background append started so far has
	// finished. Called once during graceful shutdown.
	Wait()
}
