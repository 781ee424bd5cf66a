package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"towerinv/internal/core"
	"towerinv/internal/validate"
	"towerinv/pkg/domain"
)

func (s *Server) listServiceOrders(c echo.Context) error {
	list, err := s.service.ListServiceOrders(c.Request().Context())
	if err != nil {
		return fail(c, "list service orders", err)
	}
	if list == nil {
		list = []domain.ServiceOrder{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getServiceOrder(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "get service order", err)
	}
	o, err := s.service.GetServiceOrder(c.Request().Context(), id)
	if err != nil {
		return fail(c, "get service order", err)
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) createServiceOrder(c echo.Context) error {
	var o domain.ServiceOrder
	if err := c.Bind(&o); err != nil {
		return badRequest(c, "create service order")
	}
	created, err := s.service.CreateServiceOrder(c.Request().Context(), o)
	if err != nil {
		return fail(c, "create service order", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) recordTransaction(c echo.Context) error {
	var req core.RecordTransactionInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "record transaction")
	}
	if fields := validate.Fields(req); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "record transaction",
			"message": "validation failed",
			"fields":  fields,
		})
	}
	recorded, err := s.service.RecordTransaction(c.Request().Context(), req)
	if err != nil {
		return fail(c, "record transaction", err)
	}
	return c.JSON(http.StatusCreated, recorded)
}

// transactionFilter reads the list filter from query parameters. A bare
// date in date_to extends to the end of that day.
func transactionFilter(c echo.Context) (domain.TransactionFilter, error) {
	var f domain.TransactionFilter
	var err error
	if f.TechnicianID, err = validate.OptionalID("technician_id", c.QueryParam("technician_id")); err != nil {
		return f, err
	}
	if f.LocationID, err = validate.OptionalID("location_id", c.QueryParam("location_id")); err != nil {
		return f, err
	}
	if f.ServiceOrderID, err = validate.OptionalID("service_order_id", c.QueryParam("service_order_id")); err != nil {
		return f, err
	}
	if raw := c.QueryParam("action"); raw != "" {
		action, err := validate.Action(raw)
		if err != nil {
			return f, err
		}
		f.Action = &action
	}
	if f.DateFrom, err = timeParam("date_from", c.QueryParam("date_from"), false); err != nil {
		return f, err
	}
	if f.DateTo, err = timeParam("date_to", c.QueryParam("date_to"), true); err != nil {
		return f, err
	}
	return f, nil
}

func (s *Server) listTransactions(c echo.Context) error {
	f, err := transactionFilter(c)
	if err != nil {
		return fail(c, "list transactions", err)
	}
	list, err := s.service.ListTransactions(c.Request().Context(), f)
	if err != nil {
		return fail(c, "list transactions", err)
	}
	if list == nil {
		list = []domain.TransactionRecord{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) transactionSummary(c echo.Context) error {
	var f domain.SummaryFilter
	var err error
	if f.TechnicianID, err = validate.OptionalID("technician_id", c.QueryParam("technician_id")); err != nil {
		return fail(c, "transaction summary", err)
	}
	if f.DateFrom, err = timeParam("date_from", c.QueryParam("date_from"), false); err != nil {
		return fail(c, "transaction summary", err)
	}
	if f.DateTo, err = timeParam("date_to", c.QueryParam("date_to"), true); err != nil {
		return fail(c, "transaction summary", err)
	}
	summary, err := s.service.TransactionSummary(c.Request().Context(), f)
	if err != nil {
		return fail(c, "transaction summary", err)
	}
	return c.JSON(http.StatusOK, summary)
}
