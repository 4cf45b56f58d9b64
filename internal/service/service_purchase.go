package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beatvault/beatvault/internal/content"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
	"github.com/beatvault/beatvault/models"
)

// purchaseService is the concrete implementation of PurchaseService. It
// couples the purchase ledger with download delivery: an account's first
// download of a track records the sale, every later download is free.
type purchaseService struct {
	trackRepository store.TrackRepository
	saleRepository  store.SaleRepository
	contentStore    content.Store
	audit           AuditService

	logger *logger.Logger
}

// NewPurchaseService constructs a PurchaseService over the given
// repositories and content store.
func NewPurchaseService(
	trackRepository store.TrackRepository,
	saleRepository store.SaleRepository,
	contentStore content.Store,
	audit AuditService,
	logger *logger.Logger,
) PurchaseService {
	return &purchaseService{
		trackRepository: trackRepository,
		saleRepository:  saleRepository,
		contentStore:    contentStore,
		audit:           audit,
		logger:          logger,
	}
}

// Acquire implements PurchaseService. Any authenticated session may acquire;
// there is no role restriction on downloads.
//
// The sale insert and its duplicate check are a single atomic repository
// operation, so two concurrent first downloads of the same track by the same
// account produce exactly one sale record; both requests still receive a
// working download URL.
func (p *purchaseService) Acquire(ctx context.Context, buyer models.Session, trackID int64) (AcquireResult, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(buyer); err != nil {
		return AcquireResult{}, err
	}

	track, err := p.trackRepository.FindTrackByID(ctx, trackID)
	if err != nil {
		if errors.Is(err, store.ErrNoTrackWasFound) {
			return AcquireResult{}, ErrTrackNotFound
		}
		log.Err(err).Int64("track_id", trackID).Msg("track lookup failed")
		return AcquireResult{}, fmt.Errorf("track lookup failed: %w", err)
	}

	amount := PriceFor(track.ReleaseType)

	recorded, err := p.saleRepository.RecordSale(ctx, track.TrackID, buyer.AccountID, amount)
	if err != nil {
		log.Err(err).
			Int64("track_id", track.TrackID).
			Int64("fan_id", buyer.AccountID).
			Msg("recording sale failed")
		return AcquireResult{}, fmt.Errorf("recording sale failed: %w", err)
	}

	url, err := p.contentStore.PresignDownload(ctx, track.ContentKey)
	if err != nil {
		log.Err(err).Int64("track_id", track.TrackID).Msg("presigning download failed")
		return AcquireResult{}, fmt.Errorf("presigning download failed: %w", err)
	}

	action := fmt.Sprintf("Track Downloaded: %q", track.Title)
	if recorded {
		action = fmt.Sprintf("Track Purchased: %q for %d", track.Title, amount)
	}
	p.audit.Record(ctx, models.AuditEntry{
		AccountID: &buyer.AccountID,
		Action:    action,
	})

	return AcquireResult{
		DownloadURL: url,
		Amount:      amount,
		Charged:     recorded,
	}, nil
}
