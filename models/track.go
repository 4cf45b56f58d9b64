package models

import "time"

// ReleaseType classifies a track and determines its fixed price.
type ReleaseType string

const (
	ReleaseSingle  ReleaseType = "Single"
	ReleaseMixtape ReleaseType = "Mixtape"
	ReleaseAlbum   ReleaseType = "Album"
)

// Valid reports whether t is one of the known release types.
func (t ReleaseType) Valid() bool {
	switch t {
	case ReleaseSingle, ReleaseMixtape, ReleaseAlbum:
		return true
	}
	return false
}

// Track is an artist-owned content unit. Tracks are created by an artist
// upload and never mutated afterwards by this service.
type Track struct {
	// TrackID is the internal unique identifier of the track.
	TrackID int64 `json:"id"`

	// ArtistID references the owning account. Immutable.
	ArtistID int64 `json:"artist_id"`

	// ArtistName is the owning account's username. Populated only by
	// catalog queries that join the accounts table.
	ArtistName string `json:"artist_name,omitempty"`

	// Title is the display title of the track.
	Title string `json:"title"`

	// ReleaseType determines the purchase price.
	ReleaseType ReleaseType `json:"release_type"`

	// Genre is a free-form genre label, defaulting to "Other".
	Genre string `json:"genre"`

	// ContentKey is the stable reference to the stored track bytes in the
	// content store. Never serialized; downloads receive a presigned URL.
	ContentKey string `json:"-"`

	// UploadedAt is the publication timestamp.
	UploadedAt time.Time `json:"uploaded_at"`

	// SalesCount is the number of recorded sales. Populated only by the
	// trending catalog query.
	SalesCount int64 `json:"sales_count,omitempty"`
}

// TableName returns the name of the database table
// associated with the Track model.
func (t Track) TableName() string {
	return "tracks"
}
