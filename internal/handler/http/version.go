package http

import (
	"net/http"

	"github.com/MKhiriev/go-cash-card/internal/logger"
)

// getServerVersion answers GET /api/version with the configured version as
// plain text. It is served without authentication.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
