package http

import (
	"time"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/service"
	"github.com/MKhiriev/go-cash-card/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher is nil when no hash key is configured.
	hasher *utils.Hasher

	requiredRole   string
	pagination     config.Pagination
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requiredRole:   cfg.Auth.RequiredRole,
		pagination:     cfg.Pagination,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
