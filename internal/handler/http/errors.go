// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged by the basic auth middleware when
	// the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization" header
	// is present but is not a well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoPrincipal is logged when a role check runs on a request that was
	// never authenticated.
	ErrNoPrincipal = errors.New("no authenticated principal in request context")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrInvalidCashCardID is returned when the id path segment does not fit
	// into an int64.
	ErrInvalidCashCardID = errors.New("invalid cash card id")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
