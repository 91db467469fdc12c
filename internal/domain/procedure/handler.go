package procedure

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcanvas/healthcanvas/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/procedures", h.ListProcedures)
	api.POST("/procedures", h.CreateProcedure)
}

func (h *Handler) ListProcedures(c echo.Context) error {
	items, err := h.svc.ListProcedures(c.Request().Context(), auth.MustUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Procedure{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateProcedure(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.CreateProcedure(c.Request().Context(), auth.MustUserID(c), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}
