package biomarker

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/biomarkers", h.ListBiomarkers)
	api.GET("/biomarkers/:id", h.GetBiomarker)
}

func (h *Handler) ListBiomarkers(c echo.Context) error {
	items, err := h.svc.ListDefinitions(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Definition{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBiomarker(c echo.Context) error {
	d, err := h.svc.GetDefinition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "biomarker not found")
	}
	return c.JSON(http.StatusOK, d)
}
