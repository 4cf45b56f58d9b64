package service

import (
	"context"
	"fmt"

	"github.com/beatvault/beatvault/internal/content"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/models"
)

// defaultTrendingLimit bounds the trending listing when the caller does not
// supply a limit.
const defaultTrendingLimit = 10

// catalogService is the concrete implementation of CatalogService.
type catalogService struct {
	trackRepository store.TrackRepository
	saleRepository  store.SaleRepository
	contentStore    content.Store
	audit           AuditService

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given repositories
// and content store.
func NewCatalogService(
	trackRepository store.TrackRepository,
	saleRepository store.SaleRepository,
	contentStore content.Store,
	audit AuditService,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		trackRepository: trackRepository,
		saleRepository:  saleRepository,
		contentStore:    contentStore,
		audit:           audit,
		logger:          logger,
	}
}

// Upload implements CatalogService. Only artists may publish tracks. The
// track bytes never pass through this server: a fresh object key is
// presigned for upload and the catalog row references that key.
func (c *catalogService) Upload(ctx context.Context, artist models.Session, input TrackUpload) (models.Track, string, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(artist, models.RoleArtist); err != nil {
		return models.Track{}, "", err
	}

	if input.Title == "" || !input.ReleaseType.Valid() {
		return models.Track{}, "", ErrInvalidTrackData
	}
	if input.Genre == "" {
		input.Genre = "Other"
	}

	key, uploadURL, err := c.contentStore.PresignUpload(ctx)
	if err != nil {
		log.Err(err).Msg("presigning upload failed")
		return models.Track{}, "", fmt.Errorf("presigning upload failed: %w", err)
	}

	track, err := c.trackRepository.CreateTrack(ctx, models.Track{
		ArtistID:    artist.AccountID,
		Title:       input.Title,
		ReleaseType: input.ReleaseType,
		Genre:       input.Genre,
		ContentKey:  key,
	})
	if err != nil {
		log.Err(err).Str("title", input.Title).Msg("track creation ended with error")
		return models.Track{}, "", fmt.Errorf("track creation ended with error: %w", err)
	}

	c.audit.Record(ctx, models.AuditEntry{
		AccountID: &artist.AccountID,
		Action:    fmt.Sprintf("Track Uploaded: %q", track.Title),
	})

	return track, uploadURL, nil
}

// List implements CatalogService. The catalog is public; no session is
// required.
func (c *catalogService) List(ctx context.Context, filter store.TrackFilter) ([]models.Track, error) {
	tracks, err := c.trackRepository.ListTracks(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("catalog listing failed")
		return nil, fmt.Errorf("catalog listing failed: %w", err)
	}

	return tracks, nil
}

// Trending implements CatalogService.
func (c *catalogService) Trending(ctx context.Context, limit int) ([]models.Track, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	tracks, err := c.trackRepository.TrendingTracks(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("trending listing failed")
		return nil, fmt.Errorf("trending listing failed: %w", err)
	}

	return tracks, nil
}

// Performance implements CatalogService. Artists see only their own sales.
func (c *catalogService) Performance(ctx context.Context, artist models.Session) ([]models.SaleRecord, error) {
	if err := Authorize(artist, models.RoleArtist); err != nil {
		return nil, err
	}

	sales, err := c.saleRepository.SalesByArtist(ctx, artist.AccountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("artist_id", artist.AccountID).Msg("sales listing failed")
		return nil, fmt.Errorf("sales listing failed: %w", err)
	}

	return sales, nil
}
