package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/assistant"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

// AssistantHandler exposes the optional OpenAI-backed assistant surface. The
// client may be nil when no API key is configured.
type AssistantHandler struct {
	client *assistant.Client
}

func NewAssistantHandler(client *assistant.Client) *AssistantHandler {
	return &AssistantHandler{client: client}
}

func (h *AssistantHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/ai-assistant", h.Models)
}

func (h *AssistantHandler) Models(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}
	models, err := h.client.AvailableModels(c.Request.Context())
	if err != nil {
		logger.Errorf("assistant model listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableModels": models})
}
