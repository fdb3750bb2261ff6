package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrBadCredentials = errors.New("bad credentials")
	ErrForbidden      = errors.New("access is denied")

	ErrNoPrincipalsConfigured = errors.New("no principals configured")
	ErrDuplicatePrincipal     = errors.New("duplicate principal")

	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrCashCardRejected marks a create request that cannot be stored.
	// It is not a client error: it surfaces as a plain server failure.
	ErrCashCardRejected = errors.New("cash card was rejected")
)
