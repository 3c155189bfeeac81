package coursestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// GetByID loads a learning resource by document id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new learning resource with a fresh id and zeroed counters.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	c.ID = uuid.NewString()
	c.Likes = 0
	c.LikedBy = []string{}
	c.Views = 0
	c.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// Promote persists a bundled resource under its own id. Upsert keeps a
// double-fire idempotent.
func (s *Store) Promote(ctx context.Context, c models.Course) error {
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": c.ID}, c,
		options.Replace().SetUpsert(true))
	return err
}

// UpdateLike writes the recomputed like count and liking set.
func (s *Store) UpdateLike(ctx context.Context, id string, likes int, likedBy []string) error {
	if likedBy == nil {
		likedBy = []string{}
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"likes": likes, "liked_by": likedBy}})
	return err
}

// IncrementViews bumps the view counter.
func (s *Store) IncrementViews(ctx context.Context, id string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// DeleteByID removes a persisted resource outright.
func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
