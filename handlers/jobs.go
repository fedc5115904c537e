package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/jobs"
	"github.com/skillvue/skillvue-backend/pkg/logger"
)

// JobHandler holds dependencies
type JobHandler struct {
	svc *jobs.Service
}

func NewJobHandler(svc *jobs.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// Register routes under /jobs
func (h *JobHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.List)
	rg.GET("/jobs/:id", h.Get)
}

// List returns one catalog page. Page/limit are trusted as-is per the caller
// contract; unparseable values fall back to the defaults.
func (h *JobHandler) List(c *gin.Context) {
	sector := c.Query("sector")
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "30"), 10, 64)

	res, err := h.svc.List(c.Request.Context(), sector, page, limit)
	if err != nil {
		logger.Errorf("job listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":       res.Jobs,
		"total":      res.Total,
		"page":       res.Page,
		"totalPages": res.TotalPages,
	})
}

func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		logger.Errorf("job lookup failed (id=%s): %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch job"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
