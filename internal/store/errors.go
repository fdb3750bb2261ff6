package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrCashCardNotFound is returned when no card has the requested id.
	ErrCashCardNotFound = errors.New("cash card was not found")

	// ErrCashCardNotSaved is returned when an INSERT completes without
	// yielding a new id.
	ErrCashCardNotSaved = errors.New("cash card was not saved")

	// ErrInvalidAmount is returned when the database rejects an amount,
	// e.g. a NULL or a value outside the column precision.
	ErrInvalidAmount = errors.New("invalid cash card amount")

	// ErrUnsupportedSortProperty is returned when a page is ordered by a
	// property that has no column.
	ErrUnsupportedSortProperty = errors.New("unsupported sort property")

	// ErrUnsupportedDriver is returned by [NewConnect] for drivers other
	// than pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails for a reason
	// other than an invalid amount.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan cash card row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan cash card rows")
)
