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

	"github.com/skillvue/skillvue-backend/internal/reviews"
)

func reviewsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewReviewHandler(reviews.NewService(reviews.NewMemoryRepository())).Register(g.Group("/api/v1"))
	return g
}

func TestCreateAndListReviews(t *testing.T) {
	g := reviewsRouter()

	body := `{"name":"Ada","profession":"Engineer","comment":"Great practice","contact":"ada@example.com","rating":5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/reviews", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Ada", resp.Data[0]["name"])
	// contact details stay private
	_, leaked := resp.Data[0]["contact"]
	assert.False(t, leaked)
}

func TestCreateReview_RejectsBadRating(t *testing.T) {
	g := reviewsRouter()

	for _, body := range []string{
		`{"name":"Ada","comment":"x","rating":0}`,
		`{"name":"Ada","comment":"x","rating":6}`,
		`{"name":"","comment":"x","rating":3}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		g.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}
