package jobs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines read access to job postings. Jobs are free-form
// documents; there is no write surface here, listings are seeded out of band.
type Repository interface {
	List(ctx context.Context, sector string, skip, limit int64) ([]bson.M, int64, error)
	GetByJobID(ctx context.Context, id string) (bson.M, error)
	GetByObjectID(ctx context.Context, oid primitive.ObjectID) (bson.M, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context, sector string, skip, limit int64) ([]bson.M, int64, error) {
	filter := bson.M{}
	if sector != "" {
		filter["sector"] = sector
	}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "postedDate", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	out := []bson.M{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MongoRepository) GetByJobID(ctx context.Context, id string) (bson.M, error) {
	var d bson.M
	if err := r.col.FindOne(ctx, bson.M{"jobId": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *MongoRepository) GetByObjectID(ctx context.Context, oid primitive.ObjectID) (bson.M, error) {
	var d bson.M
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}
