package observation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthcanvas/healthcanvas/internal/platform/auth"
	"github.com/healthcanvas/healthcanvas/pkg/dates"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/observations", h.ListObservations)
	api.POST("/observations", h.CreateObservation)
	api.PUT("/observations/:id", h.UpdateObservation)
	api.DELETE("/observations/:id", h.DeleteObservation)
}

func (h *Handler) ListObservations(c echo.Context) error {
	userID := auth.MustUserID(c)

	f := Filter{BiomarkerID: c.QueryParam("biomarker_id")}
	if v := c.QueryParam("start_date"); v != "" {
		d, err := dates.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date")
		}
		f.StartDate = &d
	}
	if v := c.QueryParam("end_date"); v != "" {
		d, err := dates.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date")
		}
		f.EndDate = &d
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		f.Limit = n
	}

	items, err := h.svc.ListObservations(c.Request().Context(), userID, f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Observation{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateObservation(c echo.Context) error {
	userID := auth.MustUserID(c)
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.CreateObservation(c.Request().Context(), userID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) UpdateObservation(c echo.Context) error {
	userID := auth.MustUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o, err := h.svc.UpdateObservation(c.Request().Context(), userID, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "observation not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteObservation(c echo.Context) error {
	userID := auth.MustUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteObservation(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "observation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
