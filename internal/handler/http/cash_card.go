package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/utils"
	"github.com/MKhiriev/go-cash-card/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCashCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Debug().Str("func", "*Handler.getCashCard").Err(err).Msg("id is out of range")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidCashCardID, err))
		return
	}

	card, err := h.services.CashCardService.GetCashCard(ctx, id)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.getCashCard").Int64("id", id).Int("status", status).Msg("cash card was not returned")
		return
	}

	if _, err = utils.WriteJSON(w, card, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCashCard").Msg("error writing response")
	}
}

func (h *Handler) listCashCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	page := parsePageRequest(r.URL.Query(), h.pagination)

	cards, err := h.services.CashCardService.ListCashCards(ctx, page)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.listCashCards").Any("page", page).Int("status", status).Msg("cash cards were not listed")
		return
	}

	if _, err = utils.WriteJSON(w, cards, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listCashCards").Msg("error writing response")
	}
}

func (h *Handler) createCashCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var request models.NewCashCardRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createCashCard").Msg("invalid json was passed")
		writeError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	card, err := h.services.CashCardService.CreateCashCard(ctx, request)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.createCashCard").Int("status", status).Msg("cash card was not created")
		return
	}

	w.Header().Set("Location", cashCardLocation(r, card.ID))
	utils.WriteEmpty(w, http.StatusCreated)
}

// cashCardLocation builds the absolute URL of a card from the request's
// scheme and host.
func cashCardLocation(r *http.Request, id int64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	location := url.URL{
		Scheme: scheme,
		Host:   r.Host,
		Path:   cashCardsPath + "/" + strconv.FormatInt(id, 10),
	}
	return location.String()
}
