package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"towerinv/pkg/domain"
)

func (s *Server) snapshotInfo(c echo.Context) error {
	info, err := s.service.SnapshotInfo(c.Request().Context())
	if err != nil {
		return fail(c, "snapshot info", err)
	}
	if info == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "snapshot info",
			"message": "no snapshot in shared folder",
		})
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) publishSnapshot(c echo.Context) error {
	info, err := s.service.PublishSnapshot(c.Request().Context())
	if err != nil {
		return fail(c, "publish snapshot", err)
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) pullSnapshot(c echo.Context) error {
	var req struct {
		Target string `json:"target"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "pull snapshot")
	}
	path, err := s.service.PullSnapshot(c.Request().Context(), strings.TrimSpace(req.Target))
	if err != nil {
		return fail(c, "pull snapshot", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"path": path})
}

func (s *Server) snapshotURL(c echo.Context) error {
	expiry, err := expiryParam(c.QueryParam("expiry"))
	if err != nil {
		return fail(c, "snapshot url", err)
	}
	url, err := s.service.SnapshotURL(c.Request().Context(), expiry)
	if err != nil {
		return fail(c, "snapshot url", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

// expiryParam accepts a duration string like "15m" or a plain number of
// seconds. Empty means the driver default.
func expiryParam(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, domain.ErrInvalid{Field: "expiry", Reason: "must be positive"}
		}
		return d, nil
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil || secs <= 0 {
		return 0, domain.ErrInvalid{Field: "expiry", Reason: "must be a duration such as 15m or a number of seconds"}
	}
	return time.Duration(secs) * time.Second, nil
}

func (s *Server) exportTransactions(c echo.Context) error {
	f, err := transactionFilter(c)
	if err != nil {
		return fail(c, "export transactions", err)
	}
	path, err := s.service.ExportTransactions(c.Request().Context(), f)
	if err != nil {
		return fail(c, "export transactions", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"path": path})
}

func (s *Server) exportInventory(c echo.Context) error {
	path, err := s.service.ExportInventory(c.Request().Context())
	if err != nil {
		return fail(c, "export inventory", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"path": path})
}

func (s *Server) exportServiceOrders(c echo.Context) error {
	path, err := s.service.ExportServiceOrders(c.Request().Context())
	if err != nil {
		return fail(c, "export service orders", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"path": path})
}
