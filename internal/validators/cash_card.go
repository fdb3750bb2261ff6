package validators

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-cash-card/models"
)

// Field names accepted by [CashCardValidator.Validate].
const (
	// FieldAmount targets the amount of a create request.
	FieldAmount = "amount"

	// FieldPage targets the 0-based page number of a page request.
	FieldPage = "page"

	// FieldSize targets the page size of a page request.
	FieldSize = "size"

	// FieldSort targets the orders of a page request.
	FieldSort = "sort"
)

// maxAmount bounds amounts to what NUMERIC(19, 2) can hold.
var maxAmount = decimal.New(1, 17)

// CashCardValidator validates create requests and page requests.
type CashCardValidator struct {
	maxPageSize int
}

// NewCashCardValidator returns a Validator rejecting pages larger than
// maxPageSize. A non-positive maxPageSize disables that limit.
func NewCashCardValidator(maxPageSize int) Validator {
	return &CashCardValidator{maxPageSize: maxPageSize}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.NewCashCardRequest / *models.NewCashCardRequest
//   - models.PageRequest / *models.PageRequest
//
// When fields is empty every field of the type is checked.
func (v *CashCardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewCashCardRequest:
		return v.validateNewCashCard(ctx, value, fields...)
	case *models.NewCashCardRequest:
		if value == nil {
			return ErrMissingAmount
		}
		return v.validateNewCashCard(ctx, *value, fields...)
	case models.PageRequest:
		return v.validatePageRequest(ctx, value, fields...)
	case *models.PageRequest:
		if value == nil {
			return ErrInvalidPageSize
		}
		return v.validatePageRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CashCardValidator) validateNewCashCard(_ context.Context, request models.NewCashCardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if request.Amount == nil {
				return ErrMissingAmount
			}
			if err := v.validateAmount(*request.Amount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CashCardValidator) validateAmount(amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w: %s", ErrAmountOutOfRange, amount)
	}

	return nil
}

func (v *CashCardValidator) validatePageRequest(_ context.Context, page models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldSize, FieldSort}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if page.Page < 0 {
				return ErrInvalidPageNumber
			}
		case FieldSize:
			if page.Size < 1 || (v.maxPageSize > 0 && page.Size > v.maxPageSize) {
				return fmt.Errorf("%w: %d", ErrInvalidPageSize, page.Size)
			}
		case FieldSort:
			for i, order := range page.Sort {
				if !models.IsCashCardProperty(order.Property) {
					return fmt.Errorf("%w: %q", ErrUnknownSortProperty, order.Property)
				}
				if _, ok := models.ParseDirection(string(order.Direction)); !ok {
					return fmt.Errorf("%w at index %d: %q", ErrInvalidSortOrder, i, order.Direction)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
