// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/models"
)

// cashCardRepository is the database/sql implementation of
// [CashCardRepository] over the "cash_card" table.
type cashCardRepository struct {
	*DB
	logger *logger.Logger
}

// NewCashCardRepository constructs a [CashCardRepository] on db.
func NewCashCardRepository(db *DB, log *logger.Logger) CashCardRepository {
	log.Debug().Msg("creating cash card repository")
	return &cashCardRepository{
		DB:     db,
		logger: log,
	}
}

func (r *cashCardRepository) FindByID(ctx context.Context, id int64) (models.CashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*cashCardRepository.FindByID").Int64("id", id).Msg("failed to create query")
		return models.CashCard{}, err
	}

	var card models.CashCard
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&card.ID, &card.Amount)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.CashCard{}, ErrCashCardNotFound
	case err != nil:
		log.Err(err).Str("func", "*cashCardRepository.FindByID").Int64("id", id).Msg("failed to scan cash card row")
		return models.CashCard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

func (r *cashCardRepository) FindPage(ctx context.Context, page models.PageRequest) ([]models.CashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPageQuery(r.builder, page)
	if err != nil {
		log.Err(err).
			Str("func", "*cashCardRepository.FindPage").
			Int("page", page.Page).
			Int("size", page.Size).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*cashCardRepository.FindPage").
			Int("page", page.Page).
			Int("size", page.Size).
			Msg("failed to execute query for a page of cash cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.CashCard, 0, page.Size)

	for rows.Next() {
		var card models.CashCard
		if err := rows.Scan(&card.ID, &card.Amount); err != nil {
			log.Err(err).Str("func", "*cashCardRepository.FindPage").Msg("failed to scan cash card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*cashCardRepository.FindPage").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

func (r *cashCardRepository) Insert(ctx context.Context, card models.CashCard) (models.CashCard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(r.builder, card)
	if err != nil {
		log.Err(err).Str("func", "*cashCardRepository.Insert").Msg("failed to create query")
		return models.CashCard{}, err
	}

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CashCard{}, ErrCashCardNotSaved
		}

		log.Err(err).
			Str("func", "*cashCardRepository.Insert").
			Stringer("amount", card.Amount).
			Msg("failed to insert cash card")
		return models.CashCard{}, insertError(err)
	}

	log.Debug().Str("func", "*cashCardRepository.Insert").Int64("id", id).Msg("cash card saved")

	card.ID = id
	return card, nil
}
