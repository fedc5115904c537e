package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewQuestionHandler().Register(g.Group("/api/v1"))
	return g
}

func TestGenerateQuestions(t *testing.T) {
	g := questionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-questions", strings.NewReader(`{"topic":"Go","prompt":"channels"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	lines := strings.Split(resp["text"], "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "1. "))
	assert.Contains(t, lines[0], "(Focus more on: channels)")
	assert.NotContains(t, lines[1], "Focus more on")
	for _, line := range lines {
		assert.Contains(t, line, "Go")
	}
}

func TestGenerateQuestions_EmptyTopicUsesDefault(t *testing.T) {
	g := questionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-questions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["text"], "this field")
	assert.NotContains(t, resp["text"], "Focus more on")
}

func TestGenerateQuestions_MalformedBody(t *testing.T) {
	g := questionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-questions", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
