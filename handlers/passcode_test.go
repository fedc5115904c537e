package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillvue/skillvue-backend/internal/config"
	"github.com/skillvue/skillvue-backend/internal/tokens"
)

func passcodeRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewPasscodeHandler(cfg).Register(g.Group("/api/v1"))
	return g
}

func postPasscode(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify-passcode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestVerifyPasscode_FailOpenWithoutSecret(t *testing.T) {
	g := passcodeRouter(&config.Config{})

	w := postPasscode(g, `{"passcode":"anything"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
}

func TestVerifyPasscode_Match(t *testing.T) {
	cfg := &config.Config{Room: config.RoomConfig{Passcode: "s3cret"}}
	g := passcodeRouter(cfg)

	w := postPasscode(g, `{"passcode":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postPasscode(g, `{"passcode":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
}

func TestVerifyPasscode_IssuesRoomToken(t *testing.T) {
	cfg := &config.Config{
		Room: config.RoomConfig{Passcode: "s3cret"},
		JWT:  config.JWTConfig{Secret: "signing-key", RoomTokenTTL: time.Hour},
	}
	g := passcodeRouter(cfg)

	w := postPasscode(g, `{"passcode":"s3cret","roomId":"room-7"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, _ := resp["roomToken"].(string)
	require.NotEmpty(t, raw)

	room, err := tokens.ParseRoomToken(cfg, raw)
	require.NoError(t, err)
	assert.Equal(t, "room-7", room)
}

func TestVerifyPasscode_NoTokenWithoutJWTSecret(t *testing.T) {
	cfg := &config.Config{Room: config.RoomConfig{Passcode: "s3cret"}}
	g := passcodeRouter(cfg)

	w := postPasscode(g, `{"passcode":"s3cret","roomId":"room-7"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	_, has := resp["roomToken"]
	assert.False(t, has)
}
