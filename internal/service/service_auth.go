// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/models"
)

// authService checks credentials against an immutable set of principals
// built at startup. It is safe for concurrent use.
type authService struct {
	principals map[string]models.Principal

	// dummyHash is compared against when the username is unknown, so a
	// failed lookup costs as much as a wrong password.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService parses the configured principals. Plain-text secrets are
// hashed with bcrypt at cfg.BcryptCost; "{bcrypt}" secrets are used as is.
func NewAuthService(cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	entries, err := cfg.ParsePrincipals()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoPrincipalsConfigured
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	principals := make(map[string]models.Principal, len(entries))
	for _, entry := range entries {
		if _, exists := principals[entry.Username]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePrincipal, entry.Username)
		}

		hash := entry.Hash()
		if !entry.IsHashed() {
			hashed, err := bcrypt.GenerateFromPassword([]byte(entry.Secret), cost)
			if err != nil {
				return nil, fmt.Errorf("error hashing password of %q: %w", entry.Username, err)
			}
			hash = string(hashed)
		} else if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid bcrypt hash for %q: %w", entry.Username, err)
		}

		principals[entry.Username] = models.Principal{
			Username:     entry.Username,
			PasswordHash: hash,
			Role:         entry.Role,
		}
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy password: %w", err)
	}

	logger.Debug().Int("principals", len(principals)).Msg("auth service created")

	return &authService{
		principals: principals,
		dummyHash:  dummyHash,
		logger:     logger,
	}, nil
}

func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	principal, ok := a.principals[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		log.Debug().Str("func", "*authService.Authenticate").Str("username", username).Msg("unknown user")
		return models.Principal{}, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("func", "*authService.Authenticate").Str("username", username).Msg("wrong password")
		return models.Principal{}, ErrBadCredentials
	}

	return principal, nil
}

func (a *authService) Authorize(ctx context.Context, principal models.Principal, role string) error {
	if !principal.HasRole(role) {
		logger.FromContext(ctx).Debug().
			Str("func", "*authService.Authorize").
			Str("username", principal.Username).
			Str("required_role", role).
			Msg("role is missing")
		return fmt.Errorf("%w: %s requires role %s", ErrForbidden, principal.Username, role)
	}

	return nil
}
