// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/store"
	"github.com/MKhiriev/go-cash-card/models"
)

// DefaultSort orders pages that request no sort.
var DefaultSort = models.Order{Property: models.PropertyAmount, Direction: models.Asc}

type cashCardService struct {
	repository store.CashCardRepository

	logger *logger.Logger
}

func NewCashCardService(repository store.CashCardRepository, logger *logger.Logger) CashCardService {
	return &cashCardService{
		repository: repository,
		logger:     logger,
	}
}

func (s *cashCardService) GetCashCard(ctx context.Context, id int64) (models.CashCard, error) {
	card, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return models.CashCard{}, fmt.Errorf("error getting cash card %d: %w", id, err)
	}

	return card, nil
}

func (s *cashCardService) ListCashCards(ctx context.Context, page models.PageRequest) ([]models.CashCard, error) {
	cards, err := s.repository.FindPage(ctx, page.SortOr(DefaultSort))
	if err != nil {
		return nil, fmt.Errorf("error listing cash cards: %w", err)
	}

	return cards, nil
}

func (s *cashCardService) CreateCashCard(ctx context.Context, request models.NewCashCardRequest) (models.CashCard, error) {
	log := logger.FromContext(ctx)

	if request.Amount == nil {
		return models.CashCard{}, ErrCashCardRejected
	}

	card, err := s.repository.Insert(ctx, models.CashCard{Amount: *request.Amount})
	if err != nil {
		return models.CashCard{}, fmt.Errorf("error creating cash card: %w", err)
	}

	log.Info().Str("func", "*cashCardService.CreateCashCard").Int64("id", card.ID).Msg("cash card created")

	return card, nil
}
