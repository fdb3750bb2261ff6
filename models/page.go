// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps a case-insensitive "asc"/"desc" to a Direction.
// Anything else is reported as not ok.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return "", false
}

// Order sorts a page by a single card property.
type Order struct {
	Property  string    `json:"property"`
	Direction Direction `json:"direction"`
}

// PageRequest selects a bounded, ordered subset of cash cards.
type PageRequest struct {
	// Page is the 0-based page number.
	Page int `json:"page"`

	// Size is the maximum number of records on a page.
	Size int `json:"size"`

	// Sort lists orders in priority order.
	Sort []Order `json:"sort,omitempty"`
}

// Offset returns the number of records skipped before the page starts. It
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// SortOr returns p with fallback applied when no order was requested.
func (p PageRequest) SortOr(fallback ...Order) PageRequest {
	if len(p.Sort) == 0 {
		p.Sort = fallback
	}
	return p
}

// ParseSort turns "prop1,prop2,dir" into orders. The direction applies to
// every property before it and defaults to ascending; a trailing segment
// that is not a direction is a property. Blank segments are skipped.
func ParseSort(value string) []Order {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	direction := Asc
	if d, ok := ParseDirection(parts[len(parts)-1]); ok {
		direction = d
		parts = parts[:len(parts)-1]
	}

	orders := make([]Order, 0, len(parts))
	for _, property := range parts {
		orders = append(orders, Order{Property: property, Direction: direction})
	}
	return orders
}

// String renders o the way ParseSort reads it.
func (o Order) String() string {
	if o.Direction == "" {
		return o.Property
	}
	return o.Property + "," + string(o.Direction)
}
