package http

import (
	"math"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/models"
)

const (
	pageParam = "page"
	sizeParam = "size"
	sortParam = "sort"
)

// parsePageRequest reads page, size and sort from query. It never fails:
// a missing, negative or malformed page becomes 0, a missing or
// non-positive size becomes the default and a size above the maximum is
// capped. A page whose offset would not fit in an int is clamped to the
// last representable one, which is simply past the end of the data.
// Unknown sort properties are passed through for validation.
func parsePageRequest(query url.Values, limits config.Pagination) models.PageRequest {
	page, err := strconv.Atoi(query.Get(pageParam))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(query.Get(sizeParam))
	if err != nil || size < 1 {
		size = limits.DefaultSize
	}
	if limits.MaxSize > 0 && size > limits.MaxSize {
		size = limits.MaxSize
	}

	if size > 0 && page > math.MaxInt/size {
		page = math.MaxInt / size
	}

	var orders []models.Order
	for _, value := range query[sortParam] {
		orders = append(orders, models.ParseSort(value)...)
	}

	return models.PageRequest{Page: page, Size: size, Sort: orders}
}
