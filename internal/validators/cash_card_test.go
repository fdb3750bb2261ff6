// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cash-card/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrAmount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validPage() models.PageRequest {
	return models.PageRequest{
		Page: 0,
		Size: 20,
		Sort: []models.Order{{Property: models.PropertyAmount, Direction: models.Asc}},
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewCashCardValidator(t *testing.T) {
	require.NotNil(t, NewCashCardValidator(2000))
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewCashCardValidator(2000)
	ctx := context.Background()
	page := validPage()
	request := models.NewCashCardRequest{Amount: ptrAmount("250.00")}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "create request value", obj: request},
		{name: "create request pointer", obj: &request},
		{name: "nil create request pointer", obj: (*models.NewCashCardRequest)(nil), wantErr: ErrMissingAmount},
		{name: "stored card is not validated", obj: models.CashCard{Amount: decimal.NewFromInt(1)}, wantErr: ErrUnsupportedType},
		{name: "page value", obj: page},
		{name: "page pointer", obj: &page},
		{name: "nil page pointer", obj: (*models.PageRequest)(nil), wantErr: ErrInvalidPageSize},
		{name: "unsupported", obj: "cash card", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Create requests
// ---------------------------------------------------------------------------

func TestValidate_NewCashCardRequest(t *testing.T) {
	v := NewCashCardValidator(2000)

	tests := []struct {
		name    string
		request models.NewCashCardRequest
		fields  []string
		wantErr error
	}{
		{name: "amount set", request: models.NewCashCardRequest{Amount: ptrAmount("250.00")}},
		{name: "client id is ignored", request: models.NewCashCardRequest{ID: new(int64), Amount: ptrAmount("1")}},
		{name: "zero amount", request: models.NewCashCardRequest{Amount: ptrAmount("0")}},
		{name: "negative amount", request: models.NewCashCardRequest{Amount: ptrAmount("-5.25")}},
		{name: "missing amount", request: models.NewCashCardRequest{}, wantErr: ErrMissingAmount},
		{name: "amount too large", request: models.NewCashCardRequest{Amount: ptrAmount("100000000000000000")}, wantErr: ErrAmountOutOfRange},
		{name: "largest amount", request: models.NewCashCardRequest{Amount: ptrAmount("99999999999999999.99")}},
		{name: "unknown field", request: models.NewCashCardRequest{Amount: ptrAmount("1")}, fields: []string{"owner"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Page requests
// ---------------------------------------------------------------------------

func TestValidate_PageRequest(t *testing.T) {
	v := NewCashCardValidator(100)

	tests := []struct {
		name    string
		mutate  func(p *models.PageRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.PageRequest) {}},
		{name: "no sort", mutate: func(p *models.PageRequest) { p.Sort = nil }},
		{name: "sort by id desc", mutate: func(p *models.PageRequest) {
			p.Sort = []models.Order{{Property: models.PropertyID, Direction: models.Desc}}
		}},
		{name: "negative page", mutate: func(p *models.PageRequest) { p.Page = -1 }, wantErr: ErrInvalidPageNumber},
		{name: "zero size", mutate: func(p *models.PageRequest) { p.Size = 0 }, wantErr: ErrInvalidPageSize},
		{name: "size above max", mutate: func(p *models.PageRequest) { p.Size = 101 }, wantErr: ErrInvalidPageSize},
		{name: "unknown property", mutate: func(p *models.PageRequest) {
			p.Sort = []models.Order{{Property: "owner", Direction: models.Asc}}
		}, wantErr: ErrUnknownSortProperty},
		{name: "bad direction", mutate: func(p *models.PageRequest) {
			p.Sort = []models.Order{{Property: models.PropertyAmount, Direction: "sideways"}}
		}, wantErr: ErrInvalidSortOrder},
		{name: "only page checked", mutate: func(p *models.PageRequest) { p.Size = 0 }, fields: []string{FieldPage}},
		{name: "unknown field", mutate: func(*models.PageRequest) {}, fields: []string{"limit"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := validPage()
			tt.mutate(&page)

			err := v.Validate(context.Background(), page, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PageRequestWithoutMax(t *testing.T) {
	page := validPage()
	page.Size = 1_000_000

	assert.NoError(t, NewCashCardValidator(0).Validate(context.Background(), page))
}
