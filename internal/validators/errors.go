package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingAmount       = errors.New("amount is required")
	ErrAmountOutOfRange    = errors.New("amount is out of range")
	ErrInvalidPageNumber   = errors.New("page number must not be negative")
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidSortOrder    = errors.New("invalid sort order")
	ErrUnknownSortProperty = errors.New("unknown sort property")
)
