package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"renti/internal/models"
	"renti/internal/services"
)

const (
	ussdContentType  = "text/plain; charset=utf-8"
	ussdDebugBodyMax = 1024
)

// USSDHandlers answers the Africa's Talking USSD callback.
type USSDHandlers struct {
	ussdService services.USSDService
	debug       bool
}

func NewUSSDHandlers(ussdService services.USSDService, debug bool) *USSDHandlers {
	return &USSDHandlers{ussdService: ussdService, debug: debug}
}

// Callback accepts form encoded or JSON bodies and replies with a plain
// text CON/END screen.
func (h *USSDHandlers) Callback(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return c.Blob(http.StatusMethodNotAllowed, ussdContentType, nil)
	}
	if h.debug {
		h.logRequest(c)
	}

	var req models.USSDRequest
	if err := c.Bind(&req); err != nil {
		log.Printf("WARN: failed to parse USSD body: %v", err)
		return c.Blob(http.StatusOK, ussdContentType, []byte(services.USSDFailure))
	}

	reply := h.ussdService.Handle(c.Request().Context(), &req)
	return c.Blob(http.StatusOK, ussdContentType, []byte(reply))
}

// logRequest dumps headers and the start of the body, then restores the
// body for binding.
func (h *USSDHandlers) logRequest(c echo.Context) {
	r := c.Request()
	log.Printf("DEBUG: USSD request content-type=%q content-length=%d user-agent=%q",
		r.Header.Get(echo.HeaderContentType), r.ContentLength, r.UserAgent())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("WARN: failed to read USSD body: %v", err)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if len(body) > ussdDebugBodyMax {
		body = body[:ussdDebugBodyMax]
	}
	log.Printf("DEBUG: USSD raw body: %s", body)
}
