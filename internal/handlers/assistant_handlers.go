package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"renti/internal/common"
	"renti/internal/services"
)

// AssistantHandlers exposes the AI assistant chat.
type AssistantHandlers struct {
	assistantService services.AssistantService
}

func NewAssistantHandlers(assistantService services.AssistantService) *AssistantHandlers {
	return &AssistantHandlers{assistantService: assistantService}
}

type askRequest struct {
	Text string `json:"text"`
}

func parseConversationID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return uuid.Nil, common.NewFieldError("id", "must be a valid UUID")
	}
	return id, nil
}

// StartConversation opens a chat seeded with the welcome message.
func (h *AssistantHandlers) StartConversation(c echo.Context) error {
	conversation, err := h.assistantService.Start(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	return c.JSON(http.StatusCreated, conversation)
}

func (h *AssistantHandlers) GetConversation(c echo.Context) error {
	id, err := parseConversationID(c)
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	conversation, err := h.assistantService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	return c.JSON(http.StatusOK, conversation)
}

// Ask blocks until the assistant has replied.
func (h *AssistantHandlers) Ask(c echo.Context) error {
	id, err := parseConversationID(c)
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	conversation, err := h.assistantService.Ask(c.Request().Context(), id, req.Text)
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	return c.JSON(http.StatusOK, conversation)
}

func (h *AssistantHandlers) EndConversation(c echo.Context) error {
	id, err := parseConversationID(c)
	if err != nil {
		return respondError(c, err, "Conversation")
	}
	if err := h.assistantService.End(c.Request().Context(), id); err != nil {
		return respondError(c, err, "Conversation")
	}
	return c.NoContent(http.StatusNoContent)
}
