package domain

import "strings"

// CREATE TABLE public.brands (
//     id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name TEXT NOT NULL UNIQUE
// );

type Brand struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name;type:text;uniqueIndex;not null"`
}

func (Brand) TableName() string {
	return "brands"
}

// CREATE TABLE public.cars (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     model_name TEXT NOT NULL,
//     price      NUMERIC NOT NULL,
//     brand_id   BIGINT NOT NULL REFERENCES brands(id)
// );

type Car struct {
	ID        uint    `gorm:"primaryKey"`
	ModelName string  `gorm:"column:model_name;type:text;not null"`
	Price     float64 `gorm:"column:price;type:numeric;not null;index"`
	BrandID   uint    `gorm:"column:brand_id;not null;index"`
	Brand     Brand   `gorm:"foreignKey:BrandID"`
}

func (Car) TableName() string {
	return "cars"
}

// CarFilter narrows the car inventory. A nil bound or an empty query imposes
// no constraint; supplied predicates combine with AND.
type CarFilter struct {
	Query    string
	PriceMin *float64
	PriceMax *float64
}

// Matches reports whether a single car passes every supplied predicate. The
// brand query is a case-insensitive substring match; both price bounds are
// inclusive.
func (f CarFilter) Matches(car Car) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(car.Brand.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.PriceMin != nil && car.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && car.Price > *f.PriceMax {
		return false
	}

	return true
}
