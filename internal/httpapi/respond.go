package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"towerinv/internal/sharefolder"
	"towerinv/pkg/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"
)

// fail maps a domain error onto an HTTP status and writes the {error,
// message} body. action names what the caller was doing.
func fail(c echo.Context, action string, err error) error {
	status := http.StatusInternalServerError
	switch {
	case domain.IsInvalid(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsAlreadyExists(err):
		status = http.StatusConflict
	case domain.IsIntegrity(err):
		status = http.StatusConflict
	case errors.Is(err, sharefolder.ErrUnsupported):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		FromContext(c).Error(action+" failed", zap.Error(err))
	}
	return c.JSON(status, echo.Map{
		"error":   action,
		"message": err.Error(),
	})
}

// badRequest reports a malformed request body.
func badRequest(c echo.Context, action string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   action,
		"message": "invalid request body",
	})
}

// idParam parses the :id route parameter.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalid{Field: "id", Reason: "must be a valid id"}
	}
	return id, nil
}

// timeParam accepts a bare date or a UTC timestamp. A bare date used as a
// range end extends to the last second of that day so the bound stays
// inclusive.
func timeParam(field, s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if ts, err := time.Parse(dateTimeLayout, s); err == nil {
		ts = ts.UTC()
		return &ts, nil
	}
	ts, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalid{Field: field, Reason: "must be YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ"}
	}
	ts = ts.UTC()
	if endOfDay {
		ts = ts.Add(24*time.Hour - time.Second)
	}
	return &ts, nil
}
