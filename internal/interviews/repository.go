package interviews

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// Repository spans the three interview collections: scheduled candidates
// (read-only here), raw session payloads, and scored results.
type Repository interface {
	FindCandidateByApplicationID(ctx context.Context, appID string) (*models.Candidate, error)
	InsertRaw(ctx context.Context, payload map[string]interface{}) (string, error)
	InsertResult(ctx context.Context, res *models.InterviewResult) (string, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	candidates *mongo.Collection
	raw        *mongo.Collection
	results    *mongo.Collection
}

func NewMongoRepository(candidates, raw, results *mongo.Collection) *MongoRepository {
	return &MongoRepository{candidates: candidates, raw: raw, results: results}
}

func (r *MongoRepository) FindCandidateByApplicationID(ctx context.Context, appID string) (*models.Candidate, error) {
	var c models.Candidate
	if err := r.candidates.FindOne(ctx, bson.M{"applicationId": appID}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoRepository) InsertRaw(ctx context.Context, payload map[string]interface{}) (string, error) {
	res, err := r.raw.InsertOne(ctx, payload)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (r *MongoRepository) InsertResult(ctx context.Context, ir *models.InterviewResult) (string, error) {
	if ir.CreatedAt.IsZero() {
		ir.CreatedAt = time.Now().UTC()
	}
	res, err := r.results.InsertOne(ctx, ir)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
