package models

import "time"

// SaleRecord states that a fan has acquired a track. At most one record
// exists per (TrackID, FanID) pair; this is the central invariant of the
// purchase ledger and is enforced by a database uniqueness constraint.
// Records are created exactly once and never mutated or deleted.
type SaleRecord struct {
	// SaleID is the internal unique identifier of the sale.
	SaleID int64 `json:"id"`

	// TrackID references the acquired track.
	TrackID int64 `json:"track_id"`

	// FanID references the acquiring account.
	FanID int64 `json:"fan_id"`

	// Amount is the price charged, derived from the track's release type
	// at acquisition time.
	Amount int64 `json:"amount"`

	// RecordedAt is the acquisition timestamp.
	RecordedAt time.Time `json:"recorded_at"`

	// TrackTitle and FanName are populated only by the artist performance
	// query, which joins tracks and accounts.
	TrackTitle string `json:"track_title,omitempty"`
	FanName    string `json:"fan_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the SaleRecord model.
func (s SaleRecord) TableName() string {
	return "sales"
}
