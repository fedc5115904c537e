package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillvue/skillvue-backend/internal/models"
)

// Repository defines persistence operations for users
type Repository interface {
	// UpsertRegistration applies the full registration document keyed by uid.
	// createdAt and isVerified are written only on insert.
	UpsertRegistration(ctx context.Context, u *models.User) (upsertedID string, created bool, err error)
	// UpsertProfile applies identity-provider profile fields keyed by uid,
	// independent of role/status handling.
	UpsertProfile(ctx context.Context, u *models.User) (upsertedID string, created bool, err error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// MongoRepository implements Repository using MongoDB
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a new repository for the given collection
func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) UpsertRegistration(ctx context.Context, u *models.User) (string, bool, error) {
	now := time.Now().UTC()
	filter := bson.M{"uid": u.UID}
	update := bson.M{
		"$set": bson.M{
			"email":     u.Email,
			"name":      u.Name,
			"phone":     u.Phone,
			"role":      u.Role,
			"status":    u.Status,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"uid":        u.UID,
			"isVerified": false,
			"createdAt":  now,
		},
	}
	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", false, err
	}
	return upsertedHex(res), res.UpsertedCount > 0, nil
}

func (r *MongoRepository) UpsertProfile(ctx context.Context, u *models.User) (string, bool, error) {
	now := time.Now().UTC()
	filter := bson.M{"uid": u.UID}
	set := bson.M{
		"email":     u.Email,
		"updatedAt": now,
	}
	if u.Name != "" {
		set["name"] = u.Name
	}
	if u.PhotoURL != "" {
		set["photoURL"] = u.PhotoURL
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"uid":       u.UID,
			"createdAt": now,
		},
	}
	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", false, err
	}
	return upsertedHex(res), res.UpsertedCount > 0, nil
}

func (r *MongoRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func upsertedHex(res *mongo.UpdateResult) string {
	if res.UpsertedID == nil {
		return ""
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
