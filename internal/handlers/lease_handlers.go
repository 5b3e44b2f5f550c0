package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

type LeaseHandlers struct {
	leaseService services.LeaseService
}

func NewLeaseHandlers(leaseService services.LeaseService) *LeaseHandlers {
	return &LeaseHandlers{leaseService: leaseService}
}

type renewRequest struct {
	EndDate models.Date `json:"end_date"`
}

func (h *LeaseHandlers) ListLeases(c echo.Context) error {
	leases, err := h.leaseService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Lease")
	}
	return c.JSON(http.StatusOK, leases)
}

// ExpiringLeases returns leases ending within the alert window.
func (h *LeaseHandlers) ExpiringLeases(c echo.Context) error {
	leases, err := h.leaseService.Expiring(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Lease")
	}
	return c.JSON(http.StatusOK, leases)
}

func (h *LeaseHandlers) RenewLease(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Lease")
	}
	var req renewRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	lease, err := h.leaseService.Renew(c.Request().Context(), id, req.EndDate)
	if err != nil {
		return respondError(c, err, "Lease")
	}
	return c.JSON(http.StatusOK, lease)
}
