package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/services"
)

type LandingHandlers struct {
	landingService services.LandingService
}

func NewLandingHandlers(landingService services.LandingService) *LandingHandlers {
	return &LandingHandlers{landingService: landingService}
}

func (h *LandingHandlers) Content(c echo.Context) error {
	return c.JSON(http.StatusOK, h.landingService.Content())
}
