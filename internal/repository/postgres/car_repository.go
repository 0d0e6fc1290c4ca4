package postgres

import (
	"context"
	"fmt"

	"carMarket/domain"

	"gorm.io/gorm"
)

type CarRepository struct {
	DB *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{
		DB: db,
	}
}

// FindFiltered returns cars with their brand preloaded, narrowed by the
// supplied predicates. Every bound value goes through a placeholder, never
// string concatenation.
func (r *CarRepository) FindFiltered(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Preload("Brand")

	if filter.Query != "" {
		query = query.
			Joins("JOIN brands ON brands.id = cars.brand_id").
			Where("brands.name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.PriceMin != nil {
		query = query.Where("cars.price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("cars.price <= ?", *filter.PriceMax)
	}

	var cars []domain.Car
	if err := query.Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}

	return cars, nil
}
