package store

import (
	"context"

	"github.com/MKhiriev/go-cash-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CashCardRepository persists cash cards.
type CashCardRepository interface {
	// FindByID returns the card with id or [ErrCashCardNotFound].
	FindByID(ctx context.Context, id int64) (models.CashCard, error)

	// FindPage returns the cards selected by page, in its sort order. An
	// empty page is an empty, non-nil slice.
	FindPage(ctx context.Context, page models.PageRequest) ([]models.CashCard, error)

	// Insert stores card, ignoring card.ID, and returns it with the
	// assigned id.
	Insert(ctx context.Context, card models.CashCard) (models.CashCard, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
