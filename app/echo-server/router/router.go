package router

import (
	"carMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCarRoutes(api *echo.Group, handler *rest.CarsHandler) {
	cars := api.Group("/cars")

	cars.GET("", handler.SearchCars)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Check)
}
