package recommendations

import (
	"context"
	"strconv"
	"time"

	"carMarket/pkg/logger"
	"carMarket/pkg/metrics"
)

const cacheKeyPrefix = "recommendations_"

// ScoreFetcher performs the remote call to the recommendation provider.
type ScoreFetcher interface {
	FetchScores(ctx context.Context, userID uint) (map[uint]float64, error)
}

// ScoreCache is the shared process-wide cache the fetched scores live in.
// Concurrent writers for the same key may both store; last write wins.
type ScoreCache interface {
	Get(key string) (map[uint]float64, bool)
	Set(key string, scores map[uint]float64, ttl time.Duration)
}

type recommendationsService struct {
	fetcher ScoreFetcher
	cache   ScoreCache
	ttl     time.Duration
}

func NewRecommendationsService(fetcher ScoreFetcher, cache ScoreCache, ttl time.Duration) *recommendationsService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &recommendationsService{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
	}
}

// ScoresForUser returns the cached car scores for one user, fetching and
// repopulating the entry on a miss. Provider failures are swallowed: the
// caller always gets a map, possibly empty, and ranking degrades to
// label-then-price ordering. Failed fetches are not cached, so the next
// request retries the provider.
func (s *recommendationsService) ScoresForUser(ctx context.Context, userID uint) map[uint]float64 {
	key := cacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)

	if scores, ok := s.cache.Get(key); ok {
		metrics.RecommendationCacheHits.Inc()
		return scores
	}

	scores, err := s.fetcher.FetchScores(ctx, userID)
	if err != nil {
		logger.Error("failed to fetch recommendations", err)
		metrics.RecommendationFetchFailures.Inc()
		return map[uint]float64{}
	}

	s.cache.Set(key, scores, s.ttl)

	return scores
}
