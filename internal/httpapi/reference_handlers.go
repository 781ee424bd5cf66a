package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"towerinv/pkg/domain"
)

func (s *Server) listTechnicians(c echo.Context) error {
	list, err := s.service.ListTechnicians(c.Request().Context())
	if err != nil {
		return fail(c, "list technicians", err)
	}
	if list == nil {
		list = []domain.Technician{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getTechnician(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "get technician", err)
	}
	t, err := s.service.GetTechnician(c.Request().Context(), id)
	if err != nil {
		return fail(c, "get technician", err)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) createTechnician(c echo.Context) error {
	var t domain.Technician
	if err := c.Bind(&t); err != nil {
		return badRequest(c, "create technician")
	}
	created, err := s.service.CreateTechnician(c.Request().Context(), t)
	if err != nil {
		return fail(c, "create technician", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTechnician(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "update technician", err)
	}
	var t domain.Technician
	if err := c.Bind(&t); err != nil {
		return badRequest(c, "update technician")
	}
	t.ID = id
	updated, err := s.service.UpdateTechnician(c.Request().Context(), t)
	if err != nil {
		return fail(c, "update technician", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTechnician(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "delete technician", err)
	}
	if err := s.service.DeleteTechnician(c.Request().Context(), id); err != nil {
		return fail(c, "delete technician", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listLocations(c echo.Context) error {
	list, err := s.service.ListLocations(c.Request().Context())
	if err != nil {
		return fail(c, "list locations", err)
	}
	if list == nil {
		list = []domain.Location{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getLocation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "get location", err)
	}
	l, err := s.service.GetLocation(c.Request().Context(), id)
	if err != nil {
		return fail(c, "get location", err)
	}
	return c.JSON(http.StatusOK, l)
}

func (s *Server) createLocation(c echo.Context) error {
	var l domain.Location
	if err := c.Bind(&l); err != nil {
		return badRequest(c, "create location")
	}
	created, err := s.service.CreateLocation(c.Request().Context(), l)
	if err != nil {
		return fail(c, "create location", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateLocation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "update location", err)
	}
	var l domain.Location
	if err := c.Bind(&l); err != nil {
		return badRequest(c, "update location")
	}
	l.ID = id
	updated, err := s.service.UpdateLocation(c.Request().Context(), l)
	if err != nil {
		return fail(c, "update location", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteLocation(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "delete location", err)
	}
	if err := s.service.DeleteLocation(c.Request().Context(), id); err != nil {
		return fail(c, "delete location", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listLocationDetails(c echo.Context) error {
	list, err := s.service.ListLocationDetails(c.Request().Context())
	if err != nil {
		return fail(c, "list location details", err)
	}
	if list == nil {
		list = []domain.LocationDetail{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getLocationDetail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "get location detail", err)
	}
	d, err := s.service.GetLocationDetail(c.Request().Context(), id)
	if err != nil {
		return fail(c, "get location detail", err)
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) createLocationDetail(c echo.Context) error {
	var d domain.LocationDetail
	if err := c.Bind(&d); err != nil {
		return badRequest(c, "create location detail")
	}
	created, err := s.service.CreateLocationDetail(c.Request().Context(), d)
	if err != nil {
		return fail(c, "create location detail", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateLocationDetail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "update location detail", err)
	}
	var d domain.LocationDetail
	if err := c.Bind(&d); err != nil {
		return badRequest(c, "update location detail")
	}
	d.ID = id
	updated, err := s.service.UpdateLocationDetail(c.Request().Context(), d)
	if err != nil {
		return fail(c, "update location detail", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteLocationDetail(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "delete location detail", err)
	}
	if err := s.service.DeleteLocationDetail(c.Request().Context(), id); err != nil {
		return fail(c, "delete location detail", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listItems(c echo.Context) error {
	list, err := s.service.ListInventoryItems(c.Request().Context())
	if err != nil {
		return fail(c, "list items", err)
	}
	if list == nil {
		list = []domain.InventoryItem{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "get item", err)
	}
	it, err := s.service.GetInventoryItem(c.Request().Context(), id)
	if err != nil {
		return fail(c, "get item", err)
	}
	return c.JSON(http.StatusOK, it)
}

func (s *Server) createItem(c echo.Context) error {
	var it domain.InventoryItem
	if err := c.Bind(&it); err != nil {
		return badRequest(c, "create item")
	}
	created, err := s.service.CreateInventoryItem(c.Request().Context(), it)
	if err != nil {
		return fail(c, "create item", err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "update item", err)
	}
	var it domain.InventoryItem
	if err := c.Bind(&it); err != nil {
		return badRequest(c, "update item")
	}
	it.ID = id
	updated, err := s.service.UpdateInventoryItem(c.Request().Context(), it)
	if err != nil {
		return fail(c, "update item", err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteItem(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return fail(c, "delete item", err)
	}
	if err := s.service.DeleteInventoryItem(c.Request().Context(), id); err != nil {
		return fail(c, "delete item", err)
	}
	return c.NoContent(http.StatusNoContent)
}
