package domain

import (
	"time"
)

type User struct {
	ID                uint     `gorm:"primaryKey"`
	Email             string   `gorm:"column:email;unique;not null"`
	PreferredPriceMin *float64 `gorm:"column:preferred_price_min;type:numeric"`
	PreferredPriceMax *float64 `gorm:"column:preferred_price_max;type:numeric"`
	PreferredBrands   []Brand  `gorm:"many2many:user_preferred_brands"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (User) TableName() string {
	return "users"
}

// PriceRange is an inclusive numeric interval.
type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// PreferredPriceRange returns the user's acceptable price interval. The
// range counts as unset unless both bounds are present.
func (u User) PreferredPriceRange() (PriceRange, bool) {
	if u.PreferredPriceMin == nil || u.PreferredPriceMax == nil {
		return PriceRange{}, false
	}

	return PriceRange{Min: *u.PreferredPriceMin, Max: *u.PreferredPriceMax}, true
}
