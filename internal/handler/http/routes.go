package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const cashCardsPath = "/cashcards"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Route(cashCardsPath, func(r chi.Router) {
		r.Use(h.basicAuth, h.requireRole(h.requiredRole))

		r.Get("/{id:[0-9]+}", h.getCashCard)
		r.Get("/", h.listCashCards)
		r.With(h.checkHash).Post("/", h.createCashCard)
	})

	return router
}
