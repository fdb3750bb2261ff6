// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

func init() {
	// amounts travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// CashCard is a stored cash card record.
type CashCard struct {
	// ID is assigned by the store on insert and never changes afterwards.
	ID int64 `json:"id"`

	// Amount is the monetary value held on the card.
	Amount decimal.Decimal `json:"amount"`
}

// NewCashCardRequest is the body of a create request. ID is accepted for
// compatibility with clients that send `"id": null` and is ignored.
type NewCashCardRequest struct {
	ID     *int64           `json:"id"`
	Amount *decimal.Decimal `json:"amount"`
}

func (c CashCard) TableName() string {
	return "cash_card"
}

// Properties a page of cash cards can be sorted by.
const (
	PropertyID     = "id"
	PropertyAmount = "amount"
)

// IsCashCardProperty reports whether name is a sortable card property.
func IsCashCardProperty(name string) bool {
	return name == PropertyID || name == PropertyAmount
}
