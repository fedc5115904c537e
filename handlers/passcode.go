package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/config"
	"github.com/skillvue/skillvue-backend/internal/tokens"
	"github.com/skillvue/skillvue-backend/pkg/logger"
	"github.com/skillvue/skillvue-backend/pkg/metrics"
)

// VerifyPasscodeRequest is the body of POST /verify-passcode
type VerifyPasscodeRequest struct {
	Passcode string `json:"passcode"`
	RoomID   string `json:"roomId"`
}

type PasscodeHandler struct {
	cfg *config.Config
}

func NewPasscodeHandler(cfg *config.Config) *PasscodeHandler {
	return &PasscodeHandler{cfg: cfg}
}

func (h *PasscodeHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/verify-passcode", h.Verify)
}

// Verify gates entry to interview rooms. When no passcode is configured the
// gate fails open so a misconfigured deployment never locks candidates out.
func (h *PasscodeHandler) Verify(c *gin.Context) {
	var req VerifyPasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	secret := h.cfg.Room.Passcode
	if secret == "" {
		metrics.PasscodeChecks.WithLabelValues("open").Inc()
		logger.Warn("ROOM_PASSCODE unset, passcode gate is open")
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Passcode), []byte(secret)) != 1 {
		metrics.PasscodeChecks.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false})
		return
	}

	metrics.PasscodeChecks.WithLabelValues("accepted").Inc()
	resp := gin.H{"ok": true}
	if req.RoomID != "" {
		tok, err := tokens.GenerateRoomToken(h.cfg, req.RoomID, h.cfg.JWT.RoomTokenTTL)
		switch {
		case err == nil:
			resp["roomToken"] = tok
		case errors.Is(err, tokens.ErrNoSecret):
			// no signing key, the gate result alone is the answer
		default:
			logger.Errorf("room token signing failed (room=%s): %v", req.RoomID, err)
		}
	}
	c.JSON(http.StatusOK, resp)
}
