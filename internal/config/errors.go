package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates an empty principal list, a principal
	// without credentials or an empty required role.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidPaginationConfigs indicates a default size outside 1..MaxSize.
	ErrInvalidPaginationConfigs = errors.New("invalid pagination configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidPrincipalEntry is returned while parsing AUTH_PRINCIPALS.
	ErrInvalidPrincipalEntry = errors.New("principal entry must look like user:password:ROLE")
)
