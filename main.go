package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillvue/skillvue-backend/handlers"
	"github.com/skillvue/skillvue-backend/internal/assistant"
	"github.com/skillvue/skillvue-backend/internal/config"
	"github.com/skillvue/skillvue-backend/internal/database"
	"github.com/skillvue/skillvue-backend/internal/interviews"
	"github.com/skillvue/skillvue-backend/internal/jobs"
	"github.com/skillvue/skillvue-backend/internal/leaderboard"
	"github.com/skillvue/skillvue-backend/internal/oidc"
	"github.com/skillvue/skillvue-backend/internal/reviews"
	"github.com/skillvue/skillvue-backend/internal/storage"
	"github.com/skillvue/skillvue-backend/internal/users"
	"github.com/skillvue/skillvue-backend/pkg/logger"
	"github.com/skillvue/skillvue-backend/pkg/metrics"
	"github.com/skillvue/skillvue-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL (debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: oidc=%v mongo=%v redis=%v", cfg.OIDC.IssuerURL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter can use it when configured
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			rdb = nil
		} else {
			logger.Infof("Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// OIDC verifier for the identity-sync endpoint. ALLOW_INSECURE_TOKEN
	// trades signature verification for claim parsing in integration tests.
	ctx := context.Background()
	var verifier middleware.Verifier
	if cfg.OIDC.IssuerURL != "" && cfg.OIDC.ClientID != "" {
		ver, err := oidc.NewVerifier(ctx, cfg.OIDC.IssuerURL, cfg.OIDC.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	}
	if verifier == nil {
		if strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
			logger.Warn("enabling insecure OIDC verifier (integration mode)")
			verifier = oidc.NewInsecureVerifier()
		}
	}

	// MongoDB with retry/backoff to tolerate startup races
	var client *mongo.Client
	{
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		}
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	userSvc := users.NewService(users.NewMongoRepository(db.Collection(database.ColUsers)))
	jobSvc := jobs.NewService(jobs.NewMongoRepository(db.Collection(database.ColJobs)))
	scoreSvc := leaderboard.NewService(leaderboard.NewMongoRepository(db.Collection(database.ColLeaderboard)))
	interviewSvc := interviews.NewService(interviews.NewMongoRepository(
		db.Collection(database.ColCandidates),
		db.Collection(database.ColInterviews),
		db.Collection(database.ColResults),
	), scoreSvc)
	reviewSvc := reviews.NewService(reviews.NewMongoRepository(db.Collection(database.ColReviews)))

	// optional resume storage
	var resumes *storage.ResumeStorage
	if mc := storage.LoadMinIOConfig(); mc.Endpoint != "" {
		resumes, err = storage.NewResumeStorage(mc)
		if err != nil {
			logger.Warnf("resume storage disabled: %v", err)
		} else {
			logger.Infof("resume storage ready (bucket=%s)", mc.Bucket)
		}
	}

	// optional OpenAI-backed assistant
	aiClient := assistant.NewClient(cfg)

	api := r.Group("/api/v1")
	handlers.NewUserHandler(userSvc).Register(api)
	handlers.NewJobHandler(jobSvc).Register(api)
	handlers.NewInterviewHandler(interviewSvc, resumes).Register(api)
	handlers.NewLeaderboardHandler(scoreSvc).Register(api)
	handlers.NewPasscodeHandler(cfg).Register(api)
	handlers.NewQuestionHandler().Register(api)
	handlers.NewReviewHandler(reviewSvc).Register(api)
	handlers.NewAssistantHandler(aiClient).Register(api)
	handlers.RegisterSwagger(r)

	if verifier != nil {
		api.GET("/me", middleware.AuthMiddleware(verifier), func(c *gin.Context) {
			claims, _ := c.Get("claims")
			if cm, ok := claims.(map[string]interface{}); ok {
				u, err := userSvc.UpsertFromClaims(c.Request.Context(), cm)
				if err == nil && u != nil {
					c.JSON(http.StatusOK, gin.H{"user": u})
					return
				}
			}
			c.JSON(http.StatusOK, gin.H{"claims": claims})
		})
	} else {
		api.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "OIDC not configured"})
		})
	}

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongodb"] = client.Ping(c.Request.Context(), nil) == nil
		if !deps["mongodb"] {
			ready = false
		}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}
		if cfg.OIDC.IssuerURL != "" {
			deps["oidc"] = verifier != nil
			if !deps["oidc"] {
				ready = false
			}
		} else {
			deps["oidc"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting skillvue backend on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
