package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"carMarket/business/cars"
	"carMarket/domain"
	"carMarket/pkg/logger"
	"carMarket/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type CarsService interface {
	Search(ctx context.Context, userID uint, filter domain.CarFilter) ([]domain.RankedCar, error)
}

type CarsHandler struct {
	carsService CarsService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewCarsHandler(carsService CarsService) *CarsHandler {
	return &CarsHandler{
		carsService: carsService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type SearchCarsRequest struct {
	UserID   string `query:"user_id" validate:"required,number"`
	Query    string `query:"query"`
	PriceMin string `query:"price_min"`
	PriceMax string `query:"price_max"`
	Page     string `query:"page"`
}

type BrandResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CarResponse struct {
	ID        uint          `json:"id"`
	ModelName string        `json:"model_name"`
	Price     float64       `json:"price"`
	Brand     BrandResponse `json:"brand"`
}

// ResponseError represent the response error struct
type ResponseError struct {
	Error string `json:"error"`
}

// SearchCars serves GET /cars: the ranked, labeled, paginated inventory
// listing for one user.
func (h *CarsHandler) SearchCars(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.CarSearchLatency)
	defer timer.ObserveDuration()
	metrics.CarSearchRequests.Inc()

	var req SearchCarsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	// A missing or non-numeric user_id can never resolve to a user, so it
	// gets the same not-found answer as an unknown id.
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Error: "User not found"})
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Error: "User not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	filter := cars.ParseFilter(req.Query, req.PriceMin, req.PriceMax)

	ranked, err := h.carsService.Search(ctx, uint(userID), filter)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "User not found"})
		}
		logger.Error("Failed to search cars", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Error: "internal server error"})
	}

	page := parsePage(req.Page)

	pageItems := cars.Paginate(ranked, page)

	response := make([]CarResponse, 0, len(pageItems))
	for _, rc := range pageItems {
		response = append(response, CarResponse{
			ID:        rc.Car.ID,
			ModelName: rc.Car.ModelName,
			Price:     rc.Car.Price,
			Brand: BrandResponse{
				ID:   rc.Car.Brand.ID,
				Name: rc.Car.Brand.Name,
			},
		})
	}

	return c.JSON(http.StatusOK, response)
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
