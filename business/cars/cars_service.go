package cars

import (
	"context"
	"errors"
	"fmt"

	"carMarket/domain"
	"carMarket/pkg/logger"
)

// CarRepository contract interface
type CarRepository interface {
	FindFiltered(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
}

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// ScoreProvider supplies the per-user recommendation scores. Implementations
// degrade to an empty map instead of failing, so a search never depends on
// the provider being reachable.
type ScoreProvider interface {
	ScoresForUser(ctx context.Context, userID uint) map[uint]float64
}

type carsService struct {
	carRepo  CarRepository
	userRepo UserRepository
	scores   ScoreProvider
}

func NewCarsService(carRepo CarRepository, userRepo UserRepository, scores ScoreProvider) *carsService {
	return &carsService{
		carRepo:  carRepo,
		userRepo: userRepo,
		scores:   scores,
	}
}

// Search returns the full ordered result list for one user and filter set:
// filtered by the supplied predicates, labeled against the user's
// preferences and sorted by label, rank score and price. The caller applies
// pagination.
func (s *carsService) Search(ctx context.Context, userID uint, filter domain.CarFilter) ([]domain.RankedCar, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching cars")
		return nil, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		logger.Error("failed to find user", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	candidates, err := s.carRepo.FindFiltered(ctx, filter)
	if err != nil {
		logger.Error("failed to find cars", err)
		return nil, fmt.Errorf("failed to find cars: %w", err)
	}

	scores := s.scores.ScoresForUser(ctx, user.ID)

	return RankCars(candidates, NewLabeler(user), scores), nil
}
