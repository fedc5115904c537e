package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the platform. The legacy casing of the
// candidate/result/leaderboard collections is kept for compatibility with
// existing deployments.
const (
	ColUsers         = "users"
	ColJobs          = "jobs"
	ColInterviews    = "interviews"
	ColCandidates    = "Interviews_Candidate"
	ColResults       = "InterviewResults"
	ColLeaderboard   = "Leaderboard"
	ColReviews       = "Review"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
