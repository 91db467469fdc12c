package goal

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
	api.GET("/goals", h.ListGoals)
	api.POST("/goals", h.CreateGoal)
}

func (h *Handler) ListGoals(c echo.Context) error {
	items, err := h.svc.ListGoals(c.Request().Context(), auth.MustUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Goal{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateGoal(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	g, err := h.svc.CreateGoal(c.Request().Context(), auth.MustUserID(c), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, g)
}
