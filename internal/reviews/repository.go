package reviews

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// Repository persists public testimonials.
type Repository interface {
	Insert(ctx context.Context, r *models.Review) (string, error)
	ListApproved(ctx context.Context, limit int64) ([]models.Review, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, rev *models.Review) (string, error) {
	now := time.Now().UTC()
	rev.CreatedAt = now
	rev.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (r *MongoRepository) ListApproved(ctx context.Context, limit int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"approved": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Review{}
	for cur.Next(ctx) {
		var rev models.Review
		if err := cur.Decode(&rev); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, cur.Err()
}
