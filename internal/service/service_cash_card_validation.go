package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cash-card/internal/validators"
	"github.com/MKhiriev/go-cash-card/models"
)

type CashCardValidationService struct {
	inner     CashCardService
	validator validators.Validator
}

// NewCashCardValidationService returns a wrapper that checks requests
// before they reach the wrapped service. Invalid pages fail with
// ErrInvalidDataProvided, invalid create requests with ErrCashCardRejected.
func NewCashCardValidationService(maxPageSize int) CashCardServiceWrapper {
	return &CashCardValidationService{
		validator: validators.NewCashCardValidator(maxPageSize),
	}
}

func (v *CashCardValidationService) GetCashCard(ctx context.Context, id int64) (models.CashCard, error) {
	return v.inner.GetCashCard(ctx, id)
}

func (v *CashCardValidationService) ListCashCards(ctx context.Context, page models.PageRequest) ([]models.CashCard, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListCashCards(ctx, page)
}

func (v *CashCardValidationService) CreateCashCard(ctx context.Context, request models.NewCashCardRequest) (models.CashCard, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldAmount); err != nil {
		return models.CashCard{}, fmt.Errorf("%w: %w", ErrCashCardRejected, err)
	}

	return v.inner.CreateCashCard(ctx, request)
}

func (v *CashCardValidationService) Wrap(wrapper CashCardService) CashCardService {
	v.inner = wrapper
	return v
}
