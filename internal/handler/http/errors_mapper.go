package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cash-card/internal/service"
	"github.com/MKhiriev/go-cash-card/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:          http.StatusBadRequest,
	ErrInvalidCashCardID:    http.StatusNotFound,
	ErrIntegrityCheckFailed: http.StatusBadRequest,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrBadCredentials:        http.StatusUnauthorized,
	service.ErrForbidden:             http.StatusForbidden,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrStoreUnavailable:      http.StatusServiceUnavailable,
	service.ErrCashCardRejected:      http.StatusInternalServerError,

	store.ErrCashCardNotFound:        http.StatusNotFound,
	store.ErrCashCardNotSaved:        http.StatusInternalServerError,
	store.ErrInvalidAmount:           http.StatusInternalServerError,
	store.ErrUnsupportedSortProperty: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Only client errors
// carry a plain-text message; card lookups and server failures stay empty.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if status == http.StatusBadRequest {
		http.Error(w, err.Error(), status)
		return status
	}

	w.WriteHeader(status)
	return status
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
