// Package utils holds small helpers shared across the cash card server and
// client: typed context keys, HMAC hashing, JSON responses, trace ids and
// the resty HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-cash-card/models"
)

// contextKey is a private type for context keys, so string keys from other
// packages cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey stores the authenticated *models.Principal of a request.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext returns the principal stored by WithPrincipal.
// ok is false when the value is missing, nil or of another type.
func GetPrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(*models.Principal)
	return p, ok && p != nil
}
