package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPRecorder receives one observation per served request. The Prometheus
// implementation lives in internal/metrics.
type HTTPRecorder interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
}

const loggerKey = "logger"

// requestID tags every request with a unique id, honoring one supplied by
// the caller, and exposes it on the response.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// requestLogger stores a request-scoped logger in the context and writes
// one line per completed request.
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID, _ := c.Get(echo.HeaderXRequestID).(string)
			c.Set(loggerKey, logger.With(zap.String("request_id", requestID)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request completed",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)))
			return err
		}
	}
}

// recordRequests feeds the metrics recorder. The routed path keeps label
// cardinality bounded regardless of the ids in the URL.
func recordRequests(rec HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			rec.ObserveHTTP(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return err
		}
	}
}

// FromContext retrieves the request-scoped logger, or a no-op logger when
// the middleware did not run.
func FromContext(c echo.Context) *zap.Logger {
	if logger, ok := c.Get(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}
