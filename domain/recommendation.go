package domain

// RecommendedCar is one entry of the recommendation provider payload.
type RecommendedCar struct {
	CarID     uint    `json:"car_id"`
	RankScore float64 `json:"rank_score"`
}
