package store

import (
	"context"

	"github.com/beatvault/beatvault/models"
)

// AccountRepository persists accounts and their lockout state.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)

	// RegisterFailedLogin atomically increments the account's failed-attempt
	// counter, locking the account once the new value reaches threshold, and
	// returns the post-increment state.
	RegisterFailedLogin(ctx context.Context, accountID int64, threshold int) (attempts int, locked bool, err error)

	// ResetFailedLogins clears the counter after a successful login.
	ResetFailedLogins(ctx context.Context, accountID int64) error
}

// TrackRepository persists and queries the track catalog.
type TrackRepository interface {
	CreateTrack(ctx context.Context, track models.Track) (models.Track, error)
	FindTrackByID(ctx context.Context, trackID int64) (models.Track, error)

	// ListTracks returns the catalog filtered by the non-zero fields of
	// filter, newest first.
	ListTracks(ctx context.Context, filter TrackFilter) ([]models.Track, error)

	// TrendingTracks returns the top tracks ordered by recorded sales.
	TrendingTracks(ctx context.Context, limit int) ([]models.Track, error)
}

// TrackFilter narrows a catalog listing. Zero-valued fields are ignored.
type TrackFilter struct {
	Genre          string
	ArtistUsername string
}

// SaleRepository is the purchase ledger's storage contract.
type SaleRepository interface {
	// RecordSale inserts a sale for (trackID, fanID) if none exists yet,
	// atomically with respect to the pair's uniqueness constraint. It
	// reports whether a new record was created; false means the pair was
	// already recorded, which is a success from the caller's perspective.
	RecordSale(ctx context.Context, trackID, fanID, amount int64) (recorded bool, err error)

	// SalesByArtist lists all sales of the artist's tracks, newest first.
	SalesByArtist(ctx context.Context, artistID int64) ([]models.SaleRecord, error)
}

// AuditRepository appends and reads the immutable audit log.
type AuditRepository interface {
	AppendEntry(ctx context.Context, entry models.AuditEntry) error
	RecentEntries(ctx context.Context, limit int) ([]models.AuditEntry, error)
}
