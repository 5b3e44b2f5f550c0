package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

type MaintenanceHandlers struct {
	maintenanceService services.MaintenanceService
}

func NewMaintenanceHandlers(maintenanceService services.MaintenanceService) *MaintenanceHandlers {
	return &MaintenanceHandlers{maintenanceService: maintenanceService}
}

type statusRequest struct {
	Status models.MaintenanceStatus `json:"status"`
}

type vendorRequest struct {
	Vendor string `json:"vendor"`
}

// ListRequests filters on ?status=, "All" or empty meaning every request.
func (h *MaintenanceHandlers) ListRequests(c echo.Context) error {
	status := models.MaintenanceStatus(c.QueryParam("status"))
	requests, err := h.maintenanceService.List(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"requests": requests,
		"count":    len(requests),
	})
}

func (h *MaintenanceHandlers) GetRequest(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	request, err := h.maintenanceService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusOK, request)
}

func (h *MaintenanceHandlers) CreateRequest(c echo.Context) error {
	var req services.CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	request, err := h.maintenanceService.Create(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *MaintenanceHandlers) ApproveRequest(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	request, err := h.maintenanceService.Approve(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusOK, request)
}

// RejectRequest removes the request from the list.
func (h *MaintenanceHandlers) RejectRequest(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	if err := h.maintenanceService.Reject(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MaintenanceHandlers) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	request, err := h.maintenanceService.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusOK, request)
}

func (h *MaintenanceHandlers) AssignVendor(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	request, err := h.maintenanceService.AssignVendor(c.Request().Context(), id, req.Vendor)
	if err != nil {
		return respondError(c, err, "Maintenance request")
	}
	return c.JSON(http.StatusOK, request)
}
