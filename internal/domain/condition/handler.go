package condition

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
	api.GET("/conditions", h.ListConditions)
	api.POST("/conditions", h.CreateCondition)
}

func (h *Handler) ListConditions(c echo.Context) error {
	items, err := h.svc.ListConditions(c.Request().Context(), auth.MustUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Condition{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateCondition(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cond, err := h.svc.CreateCondition(c.Request().Context(), auth.MustUserID(c), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cond)
}
