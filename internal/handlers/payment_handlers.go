package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/models"
	"renti/internal/services"
)

type PaymentHandlers struct {
	paymentService services.PaymentService
}

func NewPaymentHandlers(paymentService services.PaymentService) *PaymentHandlers {
	return &PaymentHandlers{paymentService: paymentService}
}

// ListPayments filters on ?month=Feb and ?status=Paid.
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
	var filter models.PaymentFilter
	if err := c.Bind(&filter); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	payments, err := h.paymentService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "Payment")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"payments": payments,
		"summary":  services.SummarizePayments(payments),
	})
}

func (h *PaymentHandlers) PaymentSummary(c echo.Context) error {
	var filter models.PaymentFilter
	if err := c.Bind(&filter); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	summary, err := h.paymentService.Summary(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err, "Payment")
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *PaymentHandlers) GetPayment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Payment")
	}
	payment, err := h.paymentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Payment")
	}
	return c.JSON(http.StatusOK, payment)
}

// RecordPayment marks a pending or overdue payment as received.
func (h *PaymentHandlers) RecordPayment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Payment")
	}
	var req services.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	payment, err := h.paymentService.Record(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err, "Payment")
	}
	return c.JSON(http.StatusOK, payment)
}
