package store

import (
	"context"
	"fmt"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/models"
)

// saleRepository is the PostgreSQL-backed implementation of [SaleRepository].
//
// The ledger's central invariant, at most one sale per (track, fan) pair,
// is enforced by the UNIQUE constraint on the sales table together with the
// insert-or-ignore statement in [recordSale]. A read-then-write sequence is
// deliberately absent here: it would race under concurrent downloads.
type saleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSaleRepository constructs a [SaleRepository] backed by the provided
// database connection and logger.
func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	logger.Debug().Msg("creating sale repository")
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

// RecordSale inserts the sale if the (trackID, fanID) pair has none yet.
// The returned flag reports whether a row was actually created; false means
// another request (possibly concurrent) already recorded the pair, which the
// caller treats as an idempotent success.
func (r *saleRepository) RecordSale(ctx context.Context, trackID, fanID, amount int64) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, recordSale, trackID, fanID, amount)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.RecordSale").Msg("error: sale insert failed")
		return false, classifyDBError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// SalesByArtist lists every sale of the artist's tracks, newest first, with
// the track title and fan username joined in for reporting.
func (r *saleRepository) SalesByArtist(ctx context.Context, artistID int64) ([]models.SaleRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, salesByArtist, artistID)
	if err != nil {
		log.Err(err).Str("func", "*saleRepository.SalesByArtist").Msg("error: sales query failed")
		return nil, classifyDBError(err)
	}
	defer rows.Close()

	var sales []models.SaleRecord
	for rows.Next() {
		var s models.SaleRecord
		if err := rows.Scan(&s.SaleID, &s.TrackID, &s.FanID, &s.Amount, &s.RecordedAt, &s.TrackTitle, &s.FanName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError(err)
	}

	return sales, nil
}
