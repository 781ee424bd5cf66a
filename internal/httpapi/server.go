// Package httpapi serves the tracker over HTTP: a read-only reporting
// surface for office mode and the full read-write surface for maintenance
// mode. Handlers stay thin; validation and orchestration live in the
// service layer.
package httpapi

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"towerinv/internal/config"
	"towerinv/internal/core"
)

// ShareSettings is what the share-folder config endpoints expose and
// mutate. ConfigFile is the persisted single-line path file.
type ShareSettings struct {
	Driver     string `json:"driver"`
	Path       string `json:"path"`
	ConfigFile string `json:"-"`
}

// Options configures a Server.
type Options struct {
	Mode     config.Mode
	Logger   *zap.Logger
	Recorder HTTPRecorder
	Gatherer prometheus.Gatherer
	Share    ShareSettings
}

// Server wires the echo engine, middleware, and route sets.
type Server struct {
	echo    *echo.Echo
	service *core.Service
	logger  *zap.Logger
	mode    config.Mode

	mu    sync.RWMutex
	share ShareSettings
}

// NewServer builds the HTTP server for the given mode. Maintenance mode
// serves every route; office mode serves only the read-only set.
func NewServer(service *core.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := opts.Mode
	if mode == "" {
		mode = config.ModeMaintenance
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(requestLogger(logger))
	if opts.Recorder != nil {
		e.Use(recordRequests(opts.Recorder))
	}

	s := &Server{
		echo:    e,
		service: service,
		logger:  logger,
		mode:    mode,
		share:   opts.Share,
	}
	s.routes(gatherer)
	return s
}

// Handler exposes the underlying handler for tests and embedding.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server starting",
		zap.String("addr", addr),
		zap.String("mode", string(s.mode)))
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) routes(gatherer prometheus.Gatherer) {
	e := s.echo
	e.GET("/health", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")

	// Read-only surface, served in every mode.
	api.GET("/technicians", s.listTechnicians)
	api.GET("/technicians/:id", s.getTechnician)
	api.GET("/locations", s.listLocations)
	api.GET("/locations/:id", s.getLocation)
	api.GET("/location-details", s.listLocationDetails)
	api.GET("/location-details/:id", s.getLocationDetail)
	api.GET("/items", s.listItems)
	api.GET("/items/:id", s.getItem)
	api.GET("/service-orders", s.listServiceOrders)
	api.GET("/service-orders/:id", s.getServiceOrder)
	api.GET("/transactions", s.listTransactions)
	api.GET("/reports/summary", s.transactionSummary)
	api.GET("/snapshot", s.snapshotInfo)
	api.POST("/snapshot/pull", s.pullSnapshot)
	api.GET("/snapshot/url", s.snapshotURL)
	api.POST("/exports/transactions", s.exportTransactions)
	api.POST("/exports/inventory", s.exportInventory)
	api.POST("/exports/service-orders", s.exportServiceOrders)
	api.GET("/config/sharefolder", s.getShareConfig)
	api.PUT("/config/sharefolder", s.putShareConfig)

	if s.mode != config.ModeMaintenance {
		return
	}

	// Read-write surface.
	api.POST("/technicians", s.createTechnician)
	api.PUT("/technicians/:id", s.updateTechnician)
	api.DELETE("/technicians/:id", s.deleteTechnician)
	api.POST("/locations", s.createLocation)
	api.PUT("/locations/:id", s.updateLocation)
	api.DELETE("/locations/:id", s.deleteLocation)
	api.POST("/location-details", s.createLocationDetail)
	api.PUT("/location-details/:id", s.updateLocationDetail)
	api.DELETE("/location-details/:id", s.deleteLocationDetail)
	api.POST("/items", s.createItem)
	api.PUT("/items/:id", s.updateItem)
	api.DELETE("/items/:id", s.deleteItem)
	api.POST("/service-orders", s.createServiceOrder)
	api.POST("/transactions", s.recordTransaction)
	api.POST("/snapshot/publish", s.publishSnapshot)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"mode":   string(s.mode),
	})
}
