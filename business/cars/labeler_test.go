package cars

import (
	"testing"

	"carMarket/domain"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testUser(preferredBrandIDs []uint, priceMin, priceMax *float64) domain.User {
	brands := make([]domain.Brand, 0, len(preferredBrandIDs))
	for _, id := range preferredBrandIDs {
		brands = append(brands, domain.Brand{ID: id})
	}

	return domain.User{
		ID:                1,
		PreferredBrands:   brands,
		PreferredPriceMin: priceMin,
		PreferredPriceMax: priceMax,
	}
}

func TestLabel_PerfectMatch(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, floatPtr(30000), floatPtr(50000)))

	car := domain.Car{ID: 10, BrandID: 1, Price: 35000}

	assert.Equal(t, domain.PerfectMatch, labeler.Label(car))
}

func TestLabel_PriceBoundsAreInclusive(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, floatPtr(30000), floatPtr(50000)))

	assert.Equal(t, domain.PerfectMatch, labeler.Label(domain.Car{BrandID: 1, Price: 30000}))
	assert.Equal(t, domain.PerfectMatch, labeler.Label(domain.Car{BrandID: 1, Price: 50000}))
	assert.Equal(t, domain.GoodMatch, labeler.Label(domain.Car{BrandID: 1, Price: 29999.99}))
	assert.Equal(t, domain.GoodMatch, labeler.Label(domain.Car{BrandID: 1, Price: 50000.01}))
}

func TestLabel_GoodMatchWhenPriceOutsideRange(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, floatPtr(30000), floatPtr(50000)))

	car := domain.Car{BrandID: 1, Price: 90000}

	assert.Equal(t, domain.GoodMatch, labeler.Label(car))
}

func TestLabel_UnsetRangeNeverYieldsPerfectMatch(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, nil, nil))

	car := domain.Car{BrandID: 1, Price: 35000}

	assert.Equal(t, domain.GoodMatch, labeler.Label(car))
}

func TestLabel_PartialRangeTreatedAsUnset(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, floatPtr(30000), nil))

	car := domain.Car{BrandID: 1, Price: 35000}

	assert.Equal(t, domain.GoodMatch, labeler.Label(car))
}

func TestLabel_NoMatchForNonPreferredBrand(t *testing.T) {
	labeler := NewLabeler(testUser([]uint{1}, floatPtr(30000), floatPtr(50000)))

	// Price inside the range does not help when the brand is not preferred.
	car := domain.Car{BrandID: 2, Price: 35000}

	assert.Equal(t, domain.NoMatch, labeler.Label(car))
}

func TestLabel_NoMatchWithEmptyPreferredBrands(t *testing.T) {
	labeler := NewLabeler(testUser(nil, floatPtr(30000), floatPtr(50000)))

	assert.Equal(t, domain.NoMatch, labeler.Label(domain.Car{BrandID: 1, Price: 35000}))
}

// PerfectMatch must hold exactly when the brand is preferred and the price
// falls inside the preferred range.
func TestLabel_PerfectMatchBiconditional(t *testing.T) {
	user := testUser([]uint{1}, floatPtr(30000), floatPtr(50000))
	labeler := NewLabeler(user)
	priceRange, ok := user.PreferredPriceRange()
	assert.True(t, ok)

	brandIDs := []uint{1, 2}
	prices := []float64{0, 29999, 30000, 40000, 50000, 50001}

	for _, brandID := range brandIDs {
		for _, price := range prices {
			car := domain.Car{BrandID: brandID, Price: price}

			wantPerfect := brandID == 1 && priceRange.Contains(price)
			gotPerfect := labeler.Label(car) == domain.PerfectMatch

			assert.Equal(t, wantPerfect, gotPerfect, "brand %d price %.0f", brandID, price)
		}
	}
}
