package cars

import (
	"carMarket/domain"
)

// Labeler classifies cars against one user's preferences. The preferred
// brands are pre-built into a set so labeling stays O(1) per car.
type Labeler struct {
	preferredBrands map[uint]struct{}
	priceRange      domain.PriceRange
	hasPriceRange   bool
}

func NewLabeler(user domain.User) *Labeler {
	brands := make(map[uint]struct{}, len(user.PreferredBrands))
	for _, b := range user.PreferredBrands {
		brands[b.ID] = struct{}{}
	}

	labeler := &Labeler{preferredBrands: brands}
	labeler.priceRange, labeler.hasPriceRange = user.PreferredPriceRange()

	return labeler
}

// Label returns PerfectMatch when the car's brand is preferred and its price
// falls inside the preferred range, GoodMatch when only the brand is
// preferred, NoMatch otherwise. An unset price range never yields
// PerfectMatch.
func (l *Labeler) Label(car domain.Car) domain.MatchLabel {
	if _, ok := l.preferredBrands[car.BrandID]; !ok {
		return domain.NoMatch
	}

	if l.hasPriceRange && l.priceRange.Contains(car.Price) {
		return domain.PerfectMatch
	}

	return domain.GoodMatch
}
