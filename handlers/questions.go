package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/questions"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

// GenerateQuestionsRequest is the body of POST /ai-questions
type GenerateQuestionsRequest struct {
	Topic  string `json:"topic"`
	Prompt string `json:"prompt"`
}

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

func (h *QuestionHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/ai-questions", h.Generate)
}

// Generate produces the numbered question list for a topic. Generation is
// local and deterministic; any panic degrades to the fallback text rather
// than a bare 500.
func (h *QuestionHandler) Generate(c *gin.Context) {
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("question generation panicked: %v", r)
			c.JSON(http.StatusInternalServerError, gin.H{"text": questions.FallbackText})
		}
	}()

	c.JSON(http.StatusOK, gin.H{"text": questions.Generate(req.Topic, req.Prompt)})
}
