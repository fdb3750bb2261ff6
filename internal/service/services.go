package service

import (
	"fmt"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/store"
)

type Services struct {
	AuthService     AuthService
	CashCardService CashCardService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cashCardService := NewCashCardValidationService(cfg.Pagination.MaxSize).
		Wrap(NewCashCardService(storages.CashCardRepository, logger))

	return &Services{
		AuthService:     authService,
		CashCardService: cashCardService,
		AppInfoService:  appInfoService,
		HealthService:   NewHealthService(storages.Pinger, logger),
	}, nil
}
