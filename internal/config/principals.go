// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// bcryptPrefix marks a secret that is already a bcrypt hash.
const bcryptPrefix = "{bcrypt}"

// Principal is a single parsed credential entry.
type Principal struct {
	Username string
	Secret   string
	Role     string
}

// IsHashed reports whether Secret carries a bcrypt hash rather than a plain
// text password.
func (p Principal) IsHashed() bool {
	return strings.HasPrefix(p.Secret, bcryptPrefix)
}

// Hash returns the bcrypt hash of a hashed secret.
func (p Principal) Hash() string {
	return strings.TrimPrefix(p.Secret, bcryptPrefix)
}

// ParsePrincipal parses an entry of the form "user:secret:ROLE". The secret
// is a plain text password or "{bcrypt}" followed by a bcrypt hash.
func ParsePrincipal(entry string) (Principal, error) {
	parts := strings.Split(strings.TrimSpace(entry), ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Principal{}, fmt.Errorf("%w: %q", ErrInvalidPrincipalEntry, entry)
	}

	return Principal{
		Username: parts[0],
		Secret:   parts[1],
		Role:     parts[2],
	}, nil
}

// ParsePrincipals parses every entry of the configured principal list.
func (a Auth) ParsePrincipals() ([]Principal, error) {
	principals := make([]Principal, 0, len(a.Principals))
	for _, entry := range a.Principals {
		p, err := ParsePrincipal(entry)
		if err != nil {
			return nil, err
		}
		principals = append(principals, p)
	}

	return principals, nil
}
