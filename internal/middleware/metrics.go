package middleware

import (
	"strconv"

	"github.com/h2o-salon/salon-backend/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics counts requests per route and response status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			metrics.IncHTTP(c.Path(), strconv.Itoa(c.Response().Status))
			return err
		}
	}
}
