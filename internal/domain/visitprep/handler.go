package visitprep

import (
	"fmt"
	"net/http"
	"time"

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
	api.GET("/visit-prep", h.GetPrepSheet)
	api.GET("/export/visit-pdf", h.ExportPDF)
}

func (h *Handler) GetPrepSheet(c echo.Context) error {
	userID := auth.MustUserID(c)
	sheet, err := h.svc.Prepare(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sheet)
}

func (h *Handler) ExportPDF(c echo.Context) error {
	userID := auth.MustUserID(c)
	pdfBytes, err := h.svc.ExportPDF(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	filename := fmt.Sprintf("visit-summary-%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
}
