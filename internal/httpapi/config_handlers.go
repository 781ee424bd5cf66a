package httpapi

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"towerinv/internal/config"
	"towerinv/pkg/domain"
)

func (s *Server) getShareConfig(c echo.Context) error {
	s.mu.RLock()
	share := s.share
	s.mu.RUnlock()
	return c.JSON(http.StatusOK, share)
}

// putShareConfig confirms a new shared-folder path: the directory must
// already exist, and the confirmed value is persisted to the single-line
// share file so the next start picks it up.
func (s *Server) putShareConfig(c echo.Context) error {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "update share folder")
	}
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return fail(c, "update share folder", domain.ErrInvalid{Field: "path", Reason: "cannot be empty"})
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return fail(c, "update share folder", domain.ErrInvalid{Field: "path", Reason: "must be an existing directory"})
	}

	s.mu.Lock()
	file := s.share.ConfigFile
	if file == "" {
		file = config.DefaultShareFileName
	}
	if err := config.SaveSharePath(file, path); err != nil {
		s.mu.Unlock()
		return fail(c, "update share folder", err)
	}
	s.share.Path = path
	share := s.share
	s.mu.Unlock()

	FromContext(c).Info("share folder path updated", zap.String("path", path))
	return c.JSON(http.StatusOK, share)
}
