package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
)

// trackRepository is the PostgreSQL-backed implementation of
// [TrackRepository].
type trackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTrackRepository constructs a [TrackRepository] backed by the provided
// database connection and logger.
func NewTrackRepository(db *DB, logger *logger.Logger) TrackRepository {
	logger.Debug().Msg("creating track repository")
	return &trackRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTrack persists a new track record and returns the fully populated
// [models.Track] with server-assigned fields (TrackID, UploadedAt).
func (r *trackRepository) CreateTrack(ctx context.Context, track models.Track) (models.Track, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTrack,
		track.ArtistID, track.Title, track.ReleaseType, track.Genre, track.ContentKey)

	err := row.Scan(
		&track.TrackID,
		&track.ArtistID,
		&track.Title,
		&track.ReleaseType,
		&track.Genre,
		&track.ContentKey,
		&track.UploadedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.CreateTrack").Msg("error: track insert failed")
		return models.Track{}, classifyDBError(err)
	}

	return track, nil
}

// FindTrackByID retrieves a single track by its id.
//
// Error handling:
//   - Empty result set → [ErrNoTrackWasFound].
//   - Transient driver errors → wrapped [ErrStoreUnavailable].
func (r *trackRepository) FindTrackByID(ctx context.Context, trackID int64) (models.Track, error) {
	log := logger.FromContext(ctx)

	var track models.Track
	row := r.db.QueryRowContext(ctx, findTrackByID, trackID)

	err := row.Scan(
		&track.TrackID,
		&track.ArtistID,
		&track.Title,
		&track.ReleaseType,
		&track.Genre,
		&track.ContentKey,
		&track.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Track{}, ErrNoTrackWasFound
		}

		log.Err(err).Str("func", "*trackRepository.FindTrackByID").Msg("error: track lookup failed")
		return models.Track{}, classifyDBError(err)
	}

	return track, nil
}

// ListTracks returns the catalog newest first, narrowed by the non-zero
// fields of filter. The WHERE clause is assembled with squirrel since both
// filters are optional.
func (r *trackRepository) ListTracks(ctx context.Context, filter TrackFilter) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("t.track_id", "t.artist_id", "a.username", "t.title", "t.release_type", "t.genre", "t.uploaded_at").
		From("tracks t").
		Join("accounts a ON t.artist_id = a.account_id").
		OrderBy("t.uploaded_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Genre != "" {
		builder = builder.Where(sq.Eq{"t.genre": filter.Genre})
	}
	if filter.ArtistUsername != "" {
		builder = builder.Where(sq.Eq{"a.username": filter.ArtistUsername})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.ListTracks").Msg("error: building catalog query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.ListTracks").Msg("error: catalog query failed")
		return nil, classifyDBError(err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.TrackID, &t.ArtistID, &t.ArtistName, &t.Title, &t.ReleaseType, &t.Genre, &t.UploadedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err)
	}

	return tracks, nil
}

// TrendingTracks returns the top limit tracks ordered by their recorded
// sales count, ties broken by recency.
func (r *trackRepository) TrendingTracks(ctx context.Context, limit int) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, trendingTracks, limit)
	if err != nil {
		log.Err(err).Str("func", "*trackRepository.TrendingTracks").Msg("error: trending query failed")
		return nil, classifyDBError(err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.TrackID, &t.ArtistID, &t.ArtistName, &t.Title, &t.ReleaseType, &t.Genre, &t.UploadedAt, &t.SalesCount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err)
	}

	return tracks, nil
}
