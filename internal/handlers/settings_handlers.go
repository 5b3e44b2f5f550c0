package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

type SettingsHandlers struct {
	settingsService services.SettingsService
}

func NewSettingsHandlers(settingsService services.SettingsService) *SettingsHandlers {
	return &SettingsHandlers{settingsService: settingsService}
}

type notificationsRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *SettingsHandlers) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandlers) UpdateProfile(c echo.Context) error {
	var profile models.ProfileSettings
	if err := c.Bind(&profile); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	settings, err := h.settingsService.UpdateProfile(c.Request().Context(), profile)
	if err != nil {
		return respondError(c, err, "Settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandlers) UpdateProperty(c echo.Context) error {
	var property models.PropertySettings
	if err := c.Bind(&property); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	settings, err := h.settingsService.UpdateProperty(c.Request().Context(), property)
	if err != nil {
		return respondError(c, err, "Settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandlers) UpdatePayment(c echo.Context) error {
	var payment models.PaymentSettings
	if err := c.Bind(&payment); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	settings, err := h.settingsService.UpdatePayment(c.Request().Context(), payment)
	if err != nil {
		return respondError(c, err, "Settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// SetNotifications switches reminder SMS on or off.
func (h *SettingsHandlers) SetNotifications(c echo.Context) error {
	var req notificationsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	settings, err := h.settingsService.SetNotifications(c.Request().Context(), req.Enabled)
	if err != nil {
		return respondError(c, err, "Settings")
	}
	return c.JSON(http.StatusOK, settings)
}
