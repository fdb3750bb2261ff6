package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/utils"
	"github.com/MKhiriev/go-cash-card/models"
	"github.com/shopspring/decimal"
)

const (
	cashCardsPath = "/cashcards"
	versionPath   = "/api/version"
	hashHeader    = "HashSHA256"
)

type httpAdapter struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPAdapter constructs the HTTP implementation of [CashCardAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress; an address
// without a scheme is taken as http.
func NewHTTPAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CashCardAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{logger})
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &httpAdapter{client: client, hashKey: cfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdapter) Get(ctx context.Context, id int64) (models.CashCard, error) {
	var card models.CashCard

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&card).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(cashCardsPath + "/{id}")
	if err != nil {
		return models.CashCard{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CashCard{}, err
	}

	return card, nil
}

func (h *httpAdapter) List(ctx context.Context, page models.PageRequest) ([]models.CashCard, error) {
	var cards []models.CashCard

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&cards).
		SetQueryParamsFromValues(pageQuery(page)).
		Get(cashCardsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []models.CashCard{}
	}
	return cards, nil
}

func (h *httpAdapter) Create(ctx context.Context, amount decimal.Decimal) (int64, error) {
	payload, err := json.Marshal(models.NewCashCardRequest{Amount: &amount})
	if err != nil {
		return 0, fmt.Errorf("create marshal payload: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashString(payload, h.hashKey))
	}

	resp, err := req.Post(cashCardsPath)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	id, err := idFromLocation(resp.Header().Get("Location"))
	if err != nil {
		return 0, err
	}

	h.logger.Debug().Str("func", "*httpAdapter.Create").Int64("id", id).Msg("cash card created")
	return id, nil
}

func (h *httpAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// pageQuery renders page as page/size/sort query parameters, one sort
// parameter per order.
func pageQuery(page models.PageRequest) url.Values {
	query := url.Values{}
	if page.Page > 0 {
		query.Set("page", strconv.Itoa(page.Page))
	}
	if page.Size > 0 {
		query.Set("size", strconv.Itoa(page.Size))
	}
	for _, order := range page.Sort {
		query.Add("sort", order.String())
	}
	return query
}

func idFromLocation(location string) (int64, error) {
	if location == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}

	u, err := url.Parse(location)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}

	id, err := strconv.ParseInt(path.Base(u.Path), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return id, nil
}
