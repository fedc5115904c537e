package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillvue/skillvue-backend/internal/leaderboard"
)

func TestLeaderboardTop_SortedDescending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := leaderboard.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Accumulate(ctx, "low@example.com", "Low", 10))
	require.NoError(t, repo.Accumulate(ctx, "high@example.com", "High", 90))
	require.NoError(t, repo.Accumulate(ctx, "mid@example.com", "Mid", 50))

	g := gin.New()
	NewLeaderboardHandler(leaderboard.NewService(repo)).Register(g.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Email string  `json:"email"`
			Total float64 `json:"totalScoreAccumulated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "high@example.com", resp.Data[0].Email)
	assert.Equal(t, "mid@example.com", resp.Data[1].Email)
	assert.Equal(t, "low@example.com", resp.Data[2].Email)
}

func TestLeaderboardTop_EmptyIsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewLeaderboardHandler(leaderboard.NewService(leaderboard.NewMemoryRepository())).Register(g.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
