package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/reviews"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

// CreateReviewRequest is the body of POST /reviews
type CreateReviewRequest struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Comment    string `json:"comment"`
	Contact    string `json:"contact"`
	Rating     int    `json:"rating"`
}

type ReviewHandler struct {
	svc *reviews.Service
}

func NewReviewHandler(svc *reviews.Service) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews", h.List)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req.Name, req.Profession, req.Comment, req.Contact, req.Rating)
	if err != nil {
		if errors.Is(err, reviews.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		logger.Errorf("review creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "insertedId": id})
}

// List returns published reviews, newest first. Contact details never appear
// in the response.
func (h *ReviewHandler) List(c *gin.Context) {
	items, err := h.svc.ListApproved(c.Request.Context(), reviews.DefaultListLimit)
	if err != nil {
		logger.Errorf("review listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}
