package cars

import (
	"sort"

	"carMarket/domain"
)

// RankCars labels and scores every candidate, then orders them by label
// priority, rank score (higher first) and price (cheaper first). Cars the
// provider did not score compare as score 0. The sort is stable, so the
// input order settles any remaining ties and identical input always yields
// identical output.
func RankCars(candidates []domain.Car, labeler *Labeler, scores map[uint]float64) []domain.RankedCar {
	ranked := make([]domain.RankedCar, 0, len(candidates))
	for _, car := range candidates {
		ranked = append(ranked, domain.RankedCar{
			Car:       car,
			Label:     labeler.Label(car),
			RankScore: scores[car.ID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.RankScore != b.RankScore {
			return a.RankScore > b.RankScore
		}
		return a.Car.Price < b.Car.Price
	})

	return ranked
}
