// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the cash card API.
//
// [CashCardAdapter] hides the transport from the command-line client. The
// HTTP implementation ([NewHTTPAdapter]) sends HTTP Basic credentials on
// every request and signs create requests with HashSHA256 when a hash key is
// configured.
//
// Non-2xx statuses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cash-card/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CashCardAdapter talks to a cash card server.
type CashCardAdapter interface {
	// Get fetches one card. A missing card is ErrNotFound.
	Get(ctx context.Context, id int64) (models.CashCard, error)

	// List fetches one page of cards. Zero Size leaves the page size to the
	// server; no orders leaves the sort to the server.
	List(ctx context.Context, page models.PageRequest) ([]models.CashCard, error)

	// Create stores a card with amount and returns the id the server
	// assigned, read from the Location header.
	Create(ctx context.Context, amount decimal.Decimal) (int64, error)

	// Version returns the server version. It needs no credentials.
	Version(ctx context.Context) (string, error)
}
