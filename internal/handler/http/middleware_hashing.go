package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cash-card/internal/logger"
)

const (
	hashHeader = "HashSHA256"

	maxBodySize = 1 << 20
)

// checkHash rejects bodies whose HashSHA256 header is not the HMAC-SHA256 of
// the body under the configured key. Without a key it is a pass-through.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.checkHash").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			http.Error(w, "Invalid body", http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(hashHeader)
		if !h.hasher.Verify(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", hashFromRequest).
				Err(ErrIntegrityCheckFailed).
				Msg("hashes are not equal")
			writeError(w, ErrIntegrityCheckFailed)
			return
		}

		log.Debug().Str("func", "*Handler.checkHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
