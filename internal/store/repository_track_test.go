package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
)

func newTestTrackRepo(t *testing.T) (*trackRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &trackRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func trackColumns() []string {
	return []string{"track_id", "artist_id", "title", "release_type", "genre", "content_key", "uploaded_at"}
}

func TestCreateTrack_Success(t *testing.T) {
	repo, mock, db := newTestTrackRepo(t)
	defer db.Close()

	track := models.Track{
		ArtistID:    3,
		Title:       "Night Drive",
		ReleaseType: models.ReleaseSingle,
		Genre:       "synthwave",
		ContentKey:  "tracks/abc",
	}

	rows := sqlmock.
		NewRows(trackColumns()).
		AddRow(5, track.ArtistID, track.Title, track.ReleaseType, track.Genre, track.ContentKey, time.Now())

	mock.ExpectQuery("INSERT INTO tracks").
		WithArgs(track.ArtistID, track.Title, track.ReleaseType, track.Genre, track.ContentKey).
		WillReturnRows(rows)

	created, err := repo.CreateTrack(context.Background(), track)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TrackID != 5 {
		t.Errorf("expected TrackID=5, got %d", created.TrackID)
	}
	if created.UploadedAt.IsZero() {
		t.Error("expected UploadedAt to be populated")
	}
}

func TestFindTrackByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTrackRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM tracks").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindTrackByID(context.Background(), 404)
	if !errors.Is(err, ErrNoTrackWasFound) {
		t.Fatalf("expected ErrNoTrackWasFound, got %v", err)
	}
}

func TestListTracks_NoFilter(t *testing.T) {
	repo, mock, db := newTestTrackRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"track_id", "artist_id", "username", "title", "release_type", "genre", "uploaded_at"}).
		AddRow(5, 3, "mc.ride", "Night Drive", models.ReleaseSingle, "synthwave", now).
		AddRow(6, 3, "mc.ride", "Album One", models.ReleaseAlbum, "synthwave", now)

	mock.ExpectQuery("SELECT (.+) FROM tracks t JOIN accounts a").
		WillReturnRows(rows)

	tracks, err := repo.ListTracks(context.Background(), TrackFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].ArtistName != "mc.ride" {
		t.Errorf("expected joined artist name, got %q", tracks[0].ArtistName)
	}
}

func TestListTracks_GenreFilterIsBound(t *testing.T) {
	repo, mock, db := newTestTrackRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"track_id", "artist_id", "username", "title", "release_type", "genre", "uploaded_at"}).
		AddRow(5, 3, "mc.ride", "Night Drive", models.ReleaseSingle, "synthwave", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM tracks t JOIN accounts a (.+) WHERE t.genre").
		WithArgs("synthwave").
		WillReturnRows(rows)

	tracks, err := repo.ListTracks(context.Background(), TrackFilter{Genre: "synthwave"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
}

func TestTrendingTracks_OrderedBySales(t *testing.T) {
	repo, mock, db := newTestTrackRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"track_id", "artist_id", "username", "title", "release_type", "genre", "uploaded_at", "sales_count"}).
		AddRow(6, 3, "mc.ride", "Album One", models.ReleaseAlbum, "synthwave", now, 12).
		AddRow(5, 3, "mc.ride", "Night Drive", models.ReleaseSingle, "synthwave", now, 4)

	mock.ExpectQuery("SELECT (.+) FROM tracks t").
		WithArgs(10).
		WillReturnRows(rows)

	tracks, err := repo.TrendingTracks(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].SalesCount != 12 {
		t.Errorf("expected top track with 12 sales, got %d", tracks[0].SalesCount)
	}
}
