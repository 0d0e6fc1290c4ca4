package domain

// MatchLabel classifies how well a car matches a user's stated brand and
// price preferences. The ordinal doubles as the sort priority: lower sorts
// first.
type MatchLabel uint8

const (
	PerfectMatch MatchLabel = iota
	GoodMatch
	NoMatch
)

func (l MatchLabel) String() string {
	switch l {
	case PerfectMatch:
		return "perfect_match"
	case GoodMatch:
		return "good_match"
	default:
		return ""
	}
}

// RankedCar is the per-request view of a car after labeling and scoring. It
// is built fresh for every search and discarded once the response is
// serialized.
type RankedCar struct {
	Car       Car
	Label     MatchLabel
	RankScore float64
}
