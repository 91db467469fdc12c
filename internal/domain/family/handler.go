package family

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
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
	api.GET("/family", h.ListMembers)
	api.POST("/family", h.CreateMember)
	api.POST("/family/:id/conditions", h.AddCondition)
	api.GET("/family/risk-patterns", h.RiskPatterns)
}

func (h *Handler) ListMembers(c echo.Context) error {
	userID := auth.MustUserID(c)
	items, err := h.svc.ListMembers(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Member{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMember(c echo.Context) error {
	userID := auth.MustUserID(c)
	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.CreateMember(c.Request().Context(), userID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) AddCondition(c echo.Context) error {
	userID := auth.MustUserID(c)
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req AddConditionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AddCondition(c.Request().Context(), userID, memberID, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Family member not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) RiskPatterns(c echo.Context) error {
	userID := auth.MustUserID(c)
	report, err := h.svc.RiskPatterns(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}
