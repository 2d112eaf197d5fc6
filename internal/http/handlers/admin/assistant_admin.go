package admin

import (
	"errors"

	"github.com/glowderma/glowderma/internal/http/response"
	"github.com/glowderma/glowderma/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantChatRequest is an admin chat exchange with the content assistant.
type AssistantChatRequest struct {
	Messages []service.AssistantMessage `json:"messages" binding:"required"`
}

// AssistantChat proxies a conversation to the content assistant.
func (h *Handler) AssistantChat(c *gin.Context) {
	var req AssistantChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		response.BadRequest(c, "messages are required")
		return
	}

	reply, err := h.AssistantService.Chat(c.Request.Context(), req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssistantDisabled):
			response.Error(c, response.CodeInternal, "assistant is not configured")
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(c, "messages are required")
		default:
			respondError(c, response.CodeInternal, "assistant request failed", err)
		}
		return
	}
	response.Success(c, gin.H{"reply": reply})
}
