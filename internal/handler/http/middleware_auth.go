// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/utils"
	"github.com/rs/zerolog"
)

const basicRealm = `Basic realm="cashcard"`

// basicAuth is an HTTP middleware that authenticates requests with HTTP Basic
// credentials.
//
// On success the authenticated principal is stored in the request context
// (see [utils.WithPrincipal]) and the request logger gains a "username"
// field. Every failure answers 401 with a WWW-Authenticate challenge and an
// empty body; the reason is only logged.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		if r.Header.Get("Authorization") == "" {
			log.Debug().Str("func", "*Handler.basicAuth").Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			log.Error().Str("func", "*Handler.basicAuth").Err(ErrInvalidAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		principal, err := h.services.AuthService.Authenticate(ctx, username, password)
		if err != nil {
			log.Error().Str("func", "*Handler.basicAuth").Str("username", username).Err(err).Msg("authentication failed")
			unauthorized(w)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", principal.Username)
		})
		ctx = utils.WithPrincipal(l.WithContext(ctx), &principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets a request through only when the principal stored by
// basicAuth holds role. Authenticated principals without it get 403.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			principal, ok := utils.GetPrincipalFromContext(ctx)
			if !ok {
				log.Error().Str("func", "*Handler.requireRole").Err(ErrNoPrincipal).Send()
				unauthorized(w)
				return
			}

			if err := h.services.AuthService.Authorize(ctx, *principal, role); err != nil {
				log.Error().Str("func", "*Handler.requireRole").Str("required role", role).Err(err).Msg("access denied")
				w.WriteHeader(statusFromError(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", basicRealm)
	w.WriteHeader(http.StatusUnauthorized)
}
