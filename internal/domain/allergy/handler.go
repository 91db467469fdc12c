package allergy

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
	api.GET("/allergies", h.ListAllergies)
	api.POST("/allergies", h.CreateAllergy)
}

func (h *Handler) ListAllergies(c echo.Context) error {
	items, err := h.svc.ListAllergies(c.Request().Context(), auth.MustUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Allergy{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAllergy(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateAllergy(c.Request().Context(), auth.MustUserID(c), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}
