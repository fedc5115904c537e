package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>skillvue-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "skillvue-backend", "version": "v0.1.0" },
  "paths": {
    "/api/v1/users/register": {
      "post": { "summary": "Register or update a user by external identity uid", "responses": { "200": { "description": "upserted" }, "409": { "description": "email belongs to another identity" } } }
    },
    "/api/v1/users": {
      "post": { "summary": "Sync a user profile", "responses": { "200": { "description": "upserted" } } }
    },
    "/api/v1/jobs": {
      "get": { "summary": "List job postings, optionally filtered by sector", "parameters": [ {"name":"sector","in":"query","schema":{"type":"string"}}, {"name":"page","in":"query","schema":{"type":"integer"}}, {"name":"limit","in":"query","schema":{"type":"integer"}} ], "responses": { "200": { "description": "paginated jobs" } } }
    },
    "/api/v1/jobs/{id}": {
      "get": { "summary": "Fetch a single job posting", "responses": { "200": { "description": "job" }, "404": { "description": "unknown id" } } }
    },
    "/api/v1/interview/fetch-candidate": {
      "post": { "summary": "Resolve an interview room to its candidate", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"roomId":{"type":"string"}}}}}}, "responses": { "200": { "description": "candidate" }, "404": { "description": "no candidate for room" } } }
    },
    "/api/v1/interview/submit-feedback": {
      "post": { "summary": "Store interview feedback and update the leaderboard", "responses": { "200": { "description": "recorded" } } }
    },
    "/api/v1/interviews": {
      "post": { "summary": "Record a raw interview session document", "responses": { "201": { "description": "stored" } } }
    },
    "/api/v1/leaderboard": {
      "get": { "summary": "Top accumulated scores, best first", "responses": { "200": { "description": "entries" } } }
    },
    "/api/v1/ai-questions": {
      "post": { "summary": "Generate interview questions for a topic", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"topic":{"type":"string"},"prompt":{"type":"string"}}}}}}, "responses": { "200": { "description": "numbered question list" } } }
    },
    "/api/v1/verify-passcode": {
      "post": { "summary": "Verify the interview room passcode", "responses": { "200": { "description": "accepted (or gate open)" }, "401": { "description": "rejected" } } }
    },
    "/api/v1/reviews": {
      "get": { "summary": "List published reviews", "responses": { "200": { "description": "reviews" } } },
      "post": { "summary": "Submit a review with a 1-5 rating", "responses": { "201": { "description": "stored" }, "400": { "description": "invalid rating or missing fields" } } }
    },
    "/api/v1/me": {
      "get": { "summary": "Return the verified identity and sync the profile", "responses": { "200": { "description": "claims" }, "401": { "description": "missing or invalid token" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
