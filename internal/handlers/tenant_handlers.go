package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

// TenantHandlers handles tenant-related HTTP requests
type TenantHandlers struct {
	tenantService services.TenantService
}

func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// ListTenants returns tenants filtered by ?search= and ?status=.
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	var filter models.TenantFilter
	if err := c.Bind(&filter); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	tenants, err := h.tenantService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"tenants": tenants,
		"count":   len(tenants),
	})
}

func (h *TenantHandlers) GetTenant(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	tenant, err := h.tenantService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.JSON(http.StatusOK, tenant)
}

// CreateTenant handles the add tenant form.
func (h *TenantHandlers) CreateTenant(c echo.Context) error {
	var req services.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tenant, err := h.tenantService.Create(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.JSON(http.StatusCreated, tenant)
}

func (h *TenantHandlers) UpdateTenant(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	var req services.UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tenant, err := h.tenantService.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.JSON(http.StatusOK, tenant)
}

func (h *TenantHandlers) DeleteTenant(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	if err := h.tenantService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.NoContent(http.StatusNoContent)
}

// TogglePaymentStatus flips the tenant between Paid and Due.
func (h *TenantHandlers) TogglePaymentStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	tenant, err := h.tenantService.TogglePaymentStatus(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Tenant")
	}
	return c.JSON(http.StatusOK, tenant)
}
