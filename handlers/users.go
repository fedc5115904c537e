package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/users"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

// RegisterRequest is the body of POST /users/register
type RegisterRequest struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SyncProfileRequest is the body of POST /users
type SyncProfileRequest struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// UserHandler holds dependencies
type UserHandler struct {
	svc *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register routes under /users
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/users/register", h.RegisterUser)
	rg.POST("/users", h.SyncProfile)
}

// RegisterUser upserts an account with role-derived activation status.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Register(c.Request.Context(), req.UID, req.Email, req.Role, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, users.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered with another account"})
		default:
			logger.Errorf("user register failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "upsertedId": res.UpsertedID, "created": res.Created})
}

// SyncProfile upserts identity-provider profile fields, no role/status logic.
func (h *UserHandler) SyncProfile(c *gin.Context) {
	var req SyncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.SyncProfile(c.Request.Context(), req.UID, req.Email, req.Name, req.PhotoURL)
	if err != nil {
		if errors.Is(err, users.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Errorf("profile sync failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile sync failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "upsertedId": res.UpsertedID})
}
