package journal

import (
	"net/http"
	"strconv"

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
	api.GET("/journal", h.ListEntries)
	api.POST("/journal", h.UpsertEntry)
}

func (h *Handler) ListEntries(c echo.Context) error {
	userID := auth.MustUserID(c)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.ListEntries(c.Request().Context(), userID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Entry{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpsertEntry(c echo.Context) error {
	userID := auth.MustUserID(c)
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e, err := h.svc.UpsertEntry(c.Request().Context(), userID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}
