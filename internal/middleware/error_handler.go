package middleware

import (
	"errors"
	"net/http"

	"carMarket/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the Echo fallback for errors that escape the handlers,
// such as unknown routes and panics recovered by the middleware.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, map[string]interface{}{"error": message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
