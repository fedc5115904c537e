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

	"github.com/skillvue/skillvue-backend/internal/interviews"
	"github.com/skillvue/skillvue-backend/internal/leaderboard"
	"github.com/skillvue/skillvue-backend/internal/models"
)

func setupInterviewRouter(t *testing.T) (*gin.Engine, *interviews.MemoryRepository, *leaderboard.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := interviews.NewMemoryRepository()
	lb := leaderboard.NewMemoryRepository()
	svc := interviews.NewService(repo, leaderboard.NewService(lb))
	g := gin.New()
	NewInterviewHandler(svc, nil).Register(g.Group("/api/v1"))
	return g, repo, lb
}

func TestFetchCandidate(t *testing.T) {
	g, repo, _ := setupInterviewRouter(t)
	repo.AddCandidate(&models.Candidate{
		ApplicationID: "room-42",
		Name:          "Ada",
		Email:         "ada@example.com",
		Topic:         "Go",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/fetch-candidate", strings.NewReader(`{"roomId":"room-42"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada", resp.Data["name"])
	assert.Equal(t, "ada@example.com", resp.Data["email"])
	assert.Equal(t, "Go", resp.Data["topic"])
}

func TestFetchCandidate_Errors(t *testing.T) {
	g, _, _ := setupInterviewRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/fetch-candidate", strings.NewReader(`{"roomId":""}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/interview/fetch-candidate", strings.NewReader(`{"roomId":"missing"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFeedback_AccumulatesLeaderboard(t *testing.T) {
	g, repo, lb := setupInterviewRouter(t)

	body := `{"applicationId":"room-1","applicantName":"Ada","applicantEmail":"ada@example.com","questions":[{"question":"Q1","score":8}],"totalScore":8,"feedback":"solid"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/submit-feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, repo.Results(), 1)
	assert.Equal(t, 8.0, repo.Results()[0].TotalScore)

	entries, err := lb.Top(req.Context(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ada@example.com", entries[0].Email)
	assert.Equal(t, 8.0, entries[0].TotalScore)
	assert.Equal(t, int64(1), entries[0].InterviewsCount)
}

func TestRecordInterview_AcceptsArbitraryPayload(t *testing.T) {
	g, repo, _ := setupInterviewRouter(t)

	body := `{"transcript":["hello"],"durationSec":900,"nested":{"k":"v"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["insertedId"])
	assert.Equal(t, 1, repo.RawCount())
}

func TestRecordInterview_RejectsMalformedJSON(t *testing.T) {
	g, _, _ := setupInterviewRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResume_UnavailableWithoutStorage(t *testing.T) {
	g, _, _ := setupInterviewRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interview/upload-resume", nil)
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
