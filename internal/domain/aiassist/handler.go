package aiassist

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcanvas/healthcanvas/internal/platform/ai"
	"github.com/healthcanvas/healthcanvas/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/ocr/extract", h.ExtractLabValues)
	api.GET("/ai/explain/:biomarker_id", h.ExplainBiomarker)
	api.GET("/ai/insights", h.GetInsights)
	api.GET("/ai/visit-questions", h.GetVisitQuestions)
	api.GET("/ai/test-timing", h.GetTestTiming)
}

func (h *Handler) ExtractLabValues(c echo.Context) error {
	auth.MustUserID(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.ExtractFromUpload(c.Request().Context(), content, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		var unsupported *UnsupportedFileTypeError
		switch {
		case errors.As(err, &unsupported), errors.Is(err, ErrFileTooLarge):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ai.ErrNotConfigured):
			return echo.NewHTTPError(http.StatusInternalServerError, "AI service not configured: "+err.Error())
		default:
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "Failed to extract lab values: "+err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ExplainBiomarker(c echo.Context) error {
	userID := auth.MustUserID(c)
	result, err := h.svc.Explain(c.Request().Context(), userID, c.Param("biomarker_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBiomarkerNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Biomarker not found")
		case errors.Is(err, ai.ErrNotConfigured):
			return echo.NewHTTPError(http.StatusInternalServerError, "AI service not configured: "+err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetInsights(c echo.Context) error {
	userID := auth.MustUserID(c)
	result, err := h.svc.Insights(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return echo.NewHTTPError(http.StatusInternalServerError, "AI service not configured: "+err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetVisitQuestions(c echo.Context) error {
	userID := auth.MustUserID(c)
	result, err := h.svc.VisitQuestions(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTestTiming(c echo.Context) error {
	userID := auth.MustUserID(c)
	result, err := h.svc.TestTiming(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return echo.NewHTTPError(http.StatusInternalServerError, "AI service not configured: "+err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}
