package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hostaltucan/reservas-api/internal/api/metrics"
)

// Metrics records request count and latency per registered route. Errors are
// rendered through the global error handler first so the recorded status is
// the one the client sees; the error is still returned to outer middleware.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
