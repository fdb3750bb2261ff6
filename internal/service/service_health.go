package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/store"
)

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.PingContext(ctx); err != nil {
		s.logger.Err(err).Str("func", "*healthService.Check").Msg("store ping failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}
