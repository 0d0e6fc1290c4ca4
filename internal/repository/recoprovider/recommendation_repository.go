package recoprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"carMarket/domain"

	"github.com/pobyzaarif/goshortcute"
)

type RecoProviderConfig struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
	Timeout           time.Duration
}

type RecoProviderRepository struct {
	recoProviderConfig RecoProviderConfig
	client             *http.Client
}

func NewRecoProviderRepository(cfg RecoProviderConfig) *RecoProviderRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &RecoProviderRepository{
		recoProviderConfig: cfg,
		client:             &http.Client{Timeout: timeout},
	}
}

// FetchScores calls the provider and returns the car to rank score mapping
// for one user. When the payload repeats a car_id the last entry wins.
func (r *RecoProviderRepository) FetchScores(ctx context.Context, userID uint) (map[uint]float64, error) {
	url := fmt.Sprintf("%s?user_id=%d", r.recoProviderConfig.BaseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")
	if r.recoProviderConfig.BasicAuthUsername != "" {
		buildBasicAuth := goshortcute.StringtoBase64Encode(
			r.recoProviderConfig.BasicAuthUsername + ":" + r.recoProviderConfig.BasicAuthPassword,
		)
		req.Header.Add("Authorization", "Basic "+buildBasicAuth)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("recommendation provider returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var recommended []domain.RecommendedCar
	if err := json.Unmarshal(body, &recommended); err != nil {
		return nil, fmt.Errorf("failed to unmarshal provider response: %w", err)
	}

	scores := make(map[uint]float64, len(recommended))
	for _, rec := range recommended {
		scores[rec.CarID] = rec.RankScore
	}

	return scores, nil
}
