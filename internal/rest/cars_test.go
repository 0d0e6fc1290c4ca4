package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carMarket/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarsService struct {
	ranked     []domain.RankedCar
	forceError error
	lastUserID uint
	lastFilter domain.CarFilter
}

func (f *fakeCarsService) Search(ctx context.Context, userID uint, filter domain.CarFilter) ([]domain.RankedCar, error) {
	f.lastUserID = userID
	f.lastFilter = filter
	if f.forceError != nil {
		return nil, f.forceError
	}
	return f.ranked, nil
}

func performSearch(t *testing.T, service CarsService, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewCarsHandler(service)
	require.NoError(t, handler.SearchCars(c))

	return rec
}

func rankedFixture() []domain.RankedCar {
	return []domain.RankedCar{
		{
			Car: domain.Car{
				ID: 1, ModelName: "Golf", Price: 35000,
				BrandID: 1, Brand: domain.Brand{ID: 1, Name: "Volkswagen"},
			},
			Label: domain.PerfectMatch,
		},
		{
			Car: domain.Car{
				ID: 2, ModelName: "Corolla", Price: 40000,
				BrandID: 2, Brand: domain.Brand{ID: 2, Name: "Toyota"},
			},
			Label: domain.NoMatch,
		},
	}
}

func TestSearchCars_RendersRankedArray(t *testing.T) {
	service := &fakeCarsService{ranked: rankedFixture()}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(1), service.lastUserID)

	assert.JSONEq(t, `[
		{"id": 1, "model_name": "Golf", "price": 35000, "brand": {"id": 1, "name": "Volkswagen"}},
		{"id": 2, "model_name": "Corolla", "price": 40000, "brand": {"id": 2, "name": "Toyota"}}
	]`, rec.Body.String())
}

func TestSearchCars_PassesFilterParams(t *testing.T) {
	service := &fakeCarsService{}

	performSearch(t, service, "/api/v1/cars?user_id=1&query=Toyota&price_min=36000&price_max=45000")

	assert.Equal(t, "Toyota", service.lastFilter.Query)
	require.NotNil(t, service.lastFilter.PriceMin)
	require.NotNil(t, service.lastFilter.PriceMax)
	assert.Equal(t, 36000.0, *service.lastFilter.PriceMin)
	assert.Equal(t, 45000.0, *service.lastFilter.PriceMax)
}

func TestSearchCars_MalformedBoundsTreatedAsAbsent(t *testing.T) {
	service := &fakeCarsService{}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1&price_min=abc&price_max=-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastFilter.PriceMin)
	assert.Nil(t, service.lastFilter.PriceMax)
}

func TestSearchCars_UnknownUser(t *testing.T) {
	service := &fakeCarsService{forceError: domain.ErrUserNotFound}

	rec := performSearch(t, service, "/api/v1/cars?user_id=9999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestSearchCars_MissingUserID(t *testing.T) {
	service := &fakeCarsService{}

	rec := performSearch(t, service, "/api/v1/cars")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestSearchCars_NonNumericUserID(t *testing.T) {
	service := &fakeCarsService{}

	rec := performSearch(t, service, "/api/v1/cars?user_id=abc")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestSearchCars_PersistenceFailure(t *testing.T) {
	service := &fakeCarsService{forceError: errors.New("db down")}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchCars_PaginatesToTwentyPerPage(t *testing.T) {
	ranked := make([]domain.RankedCar, 0, 25)
	for i := 1; i <= 25; i++ {
		ranked = append(ranked, domain.RankedCar{
			Car: domain.Car{ID: uint(i), ModelName: "Car", Price: float64(i)},
		})
	}
	service := &fakeCarsService{ranked: ranked}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1")

	var response []CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 20)
	assert.Equal(t, uint(1), response[0].ID)

	rec = performSearch(t, service, "/api/v1/cars?user_id=1&page=2")

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 5)
	assert.Equal(t, uint(21), response[0].ID)
}

func TestSearchCars_OutOfRangePageIsEmptyArray(t *testing.T) {
	service := &fakeCarsService{ranked: rankedFixture()}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1&page=99")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchCars_BadPageDefaultsToFirst(t *testing.T) {
	service := &fakeCarsService{ranked: rankedFixture()}

	rec := performSearch(t, service, "/api/v1/cars?user_id=1&page=zero")

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}
