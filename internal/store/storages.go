package store

import "github.com/beatvault/beatvault/internal/logger"

// Storages aggregates all repositories backed by one database connection.
type Storages struct {
	AccountRepository AccountRepository
	TrackRepository   TrackRepository
	SaleRepository    SaleRepository
	AuditRepository   AuditRepository
}

// NewStorages wires every repository to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		TrackRepository:   NewTrackRepository(db, logger),
		SaleRepository:    NewSaleRepository(db, logger),
		AuditRepository:   NewAuditRepository(db, logger),
	}
}
