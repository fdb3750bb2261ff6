package service

import (
	"context"

	"github.com/MKhiriev/go-cash-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CashCardService reads and creates cash cards.
type CashCardService interface {
	GetCashCard(ctx context.Context, id int64) (models.CashCard, error)

	// ListCashCards returns a page of cards. A page without orders is sorted
	// by amount, ascending.
	ListCashCards(ctx context.Context, page models.PageRequest) ([]models.CashCard, error)

	// CreateCashCard stores a new card with a server-assigned id.
	CreateCashCard(ctx context.Context, request models.NewCashCardRequest) (models.CashCard, error)
}

// AuthService verifies HTTP Basic credentials against the configured
// principals.
type AuthService interface {
	// Authenticate returns the principal for valid credentials, or
	// ErrBadCredentials.
	Authenticate(ctx context.Context, username, password string) (models.Principal, error)

	// Authorize returns ErrForbidden unless principal holds role.
	Authorize(ctx context.Context, principal models.Principal, role string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service can reach its store.
type HealthService interface {
	Check(ctx context.Context) error
}

// CashCardServiceWrapper decorates a CashCardService with additional
// behavior such as validation.
type CashCardServiceWrapper interface {
	Wrap(CashCardService) CashCardService
}
