package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillvue/skillvue-backend/internal/interviews"
	"github.com/skillvue/skillvue-backend/internal/models"
	"github.com/skillvue/skillvue-backend/internal/storage"
	"github.com/skillvue/skillvue-backend/pkg/logger"
	"github.com/skillvue/skillvue-backend/pkg/metrics"
)

// FetchCandidateRequest is the body of POST /interview/fetch-candidate
type FetchCandidateRequest struct {
	RoomID string `json:"roomId"`
}

// SubmitFeedbackRequest is the body of POST /interview/submit-feedback
type SubmitFeedbackRequest struct {
	ApplicationID  string                 `json:"applicationId"`
	ApplicantName  string                 `json:"applicantName"`
	ApplicantEmail string                 `json:"applicantEmail"`
	Questions      []models.QuestionScore `json:"questions"`
	TotalScore     float64                `json:"totalScore"`
	Feedback       string                 `json:"feedback"`
}

// InterviewHandler holds dependencies. Resumes may be nil when no object
// storage is configured.
type InterviewHandler struct {
	svc     *interviews.Service
	resumes *storage.ResumeStorage
}

func NewInterviewHandler(svc *interviews.Service, resumes *storage.ResumeStorage) *InterviewHandler {
	return &InterviewHandler{svc: svc, resumes: resumes}
}

// Register routes under /interview and /interviews
func (h *InterviewHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/interview/fetch-candidate", h.FetchCandidate)
	rg.POST("/interview/submit-feedback", h.SubmitFeedback)
	rg.POST("/interview/upload-resume", h.UploadResume)
	rg.POST("/interviews", h.RecordInterview)
}

// FetchCandidate resolves a room id to the scheduled candidate's profile.
func (h *InterviewHandler) FetchCandidate(c *gin.Context) {
	var req FetchCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	cand, err := h.svc.FindCandidateByRoom(c.Request.Context(), req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "roomId is required"})
		case errors.Is(err, interviews.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "candidate not found"})
		default:
			logger.Errorf("candidate lookup failed (room=%s): %v", req.RoomID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch candidate"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"id":    cand.ID,
		"name":  cand.Name,
		"email": cand.Email,
		"topic": cand.Topic,
	}})
}

// SubmitFeedback stores the scored result and feeds the leaderboard
// accumulator. The two writes are not one transaction; see the service.
func (h *InterviewHandler) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	_, err := h.svc.SubmitFeedback(c.Request.Context(), &models.InterviewResult{
		ApplicationID:  req.ApplicationID,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		Questions:      req.Questions,
		TotalScore:     req.TotalScore,
		Feedback:       req.Feedback,
	})
	if err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("error").Inc()
		logger.Errorf("feedback submission failed (app=%s): %v", req.ApplicationID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to submit feedback"})
		return
	}
	metrics.FeedbackSubmissions.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "feedback recorded"})
}

// RecordInterview persists an arbitrary session document verbatim.
func (h *InterviewHandler) RecordInterview(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.Record(c.Request.Context(), payload)
	if err != nil {
		logger.Errorf("interview ingestion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record interview"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// UploadResume stores a candidate resume in object storage and returns a
// presigned link.
func (h *InterviewHandler) UploadResume(c *gin.Context) {
	if h.resumes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "resume storage not configured"})
		return
	}
	roomID := c.PostForm("roomId")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	key, err := h.resumes.Upload(c.Request.Context(), roomID, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		logger.Errorf("resume upload failed (room=%s): %v", roomID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume"})
		return
	}
	url, err := h.resumes.PresignedURL(c.Request.Context(), key, 24*time.Hour)
	if err != nil {
		logger.Errorf("resume presign failed (key=%s): %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create download link"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}
