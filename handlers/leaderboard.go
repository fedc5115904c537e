package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/leaderboard"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

type LeaderboardHandler struct {
	svc *leaderboard.Service
}

func NewLeaderboardHandler(svc *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

func (h *LeaderboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/leaderboard", h.Top)
}

// Top returns the highest accumulated scores, best first.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.svc.Top(c.Request.Context(), leaderboard.DefaultTopLimit)
	if err != nil {
		logger.Errorf("leaderboard read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}
