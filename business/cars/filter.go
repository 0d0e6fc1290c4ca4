package cars

import (
	"strconv"
	"strings"

	"carMarket/domain"
)

// ParseFilter builds a CarFilter from raw query parameters. Values that do
// not parse as non-negative numbers are treated as absent rather than
// rejected, so a malformed bound can never fail the request.
func ParseFilter(query, priceMin, priceMax string) domain.CarFilter {
	return domain.CarFilter{
		Query:    strings.TrimSpace(query),
		PriceMin: parsePriceBound(priceMin),
		PriceMax: parsePriceBound(priceMax),
	}
}

func parsePriceBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}

	return &value
}
