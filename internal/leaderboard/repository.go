package leaderboard

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// Repository persists accumulated scores keyed by candidate email.
type Repository interface {
	// Accumulate adds score to the entry for email in a single atomic
	// increment-or-create. Concurrent calls for the same email must all land.
	Accumulate(ctx context.Context, email, name string, score float64) error
	Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	// email is the accumulator key; enforce uniqueness so two racing upserts
	// cannot create twin entries
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Accumulate(ctx context.Context, email, name string, score float64) error {
	filter := bson.M{"email": email}
	update := bson.M{
		"$inc": bson.M{
			"totalScoreAccumulated": score,
			"interviewsCount":       1,
		},
		"$set": bson.M{
			"name":        name,
			"lastUpdated": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"email": email,
		},
	}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *MongoRepository) Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "totalScoreAccumulated", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.LeaderboardEntry{}
	for cur.Next(ctx) {
		var e models.LeaderboardEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}
