package cars

import (
	"carMarket/domain"
)

// PageSize is the fixed number of cars per response page.
const PageSize = 20

// Paginate returns the 1-indexed page of an ordered result list, clamped to
// its bounds. Pages before the first are treated as page one; pages past the
// end are empty.
func Paginate(ranked []domain.RankedCar, page int) []domain.RankedCar {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(ranked) {
		return []domain.RankedCar{}
	}

	end := start + PageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	return ranked[start:end]
}
