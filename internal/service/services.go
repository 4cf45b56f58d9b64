package service

import (
	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/content"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/store"
)

type Services struct {
	AuthService     AuthService
	SessionService  SessionService
	CatalogService  CatalogService
	PurchaseService PurchaseService
	AuditService    AuditService
}

func NewServices(storages *store.Storages, contentStore content.Store, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	audit := NewAuditService(storages.AuditRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.AccountRepository, cfg.App, logger),
		SessionService:  NewSessionService(logger),
		CatalogService:  NewCatalogService(storages.TrackRepository, storages.SaleRepository, contentStore, audit, logger),
		PurchaseService: NewPurchaseService(storages.TrackRepository, storages.SaleRepository, contentStore, audit, logger),
		AuditService:    audit,
	}
}
