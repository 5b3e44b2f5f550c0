package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/reports"
	"renti/internal/services"
)

type ReportHandlers struct {
	reportService services.ReportService
	charts        *reports.ChartRenderer
}

func NewReportHandlers(reportService services.ReportService, charts *reports.ChartRenderer) *ReportHandlers {
	return &ReportHandlers{reportService: reportService, charts: charts}
}

func (h *ReportHandlers) Catalogue(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reportService.Catalogue(c.Request().Context()))
}

// Generate builds the report named by :kind, e.g. "revenue".
func (h *ReportHandlers) Generate(c echo.Context) error {
	report, err := h.reportService.Generate(c.Request().Context(), models.ReportKind(c.Param("kind")))
	if err != nil {
		return respondError(c, err, "Report")
	}
	return c.JSON(http.StatusOK, report)
}

func (h *ReportHandlers) Analytics(c echo.Context) error {
	series, err := h.reportService.Analytics(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Report")
	}
	return c.JSON(http.StatusOK, series)
}

// Chart serves a rendered chart page.
func (h *ReportHandlers) Chart(c echo.Context) error {
	html, err := h.charts.Render(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, reports.ErrUnknownChart) {
			return common.SendNotFoundError(c, "Chart")
		}
		return respondError(c, err, "Chart")
	}
	return c.HTML(http.StatusOK, html)
}

func (h *ReportHandlers) Charts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"charts": reports.ChartNames})
}
