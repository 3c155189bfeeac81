package ideastore

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
	return &Store{c: db.Collection("ideas")}
}

// GetByID loads an idea by document id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	var i models.Idea
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts a new idea with a fresh id and zeroed counters. The caller
// sanitizes text fields before handing them over.
func (s *Store) Create(ctx context.Context, i models.Idea) (models.Idea, error) {
	i.ID = uuid.NewString()
	i.Views = 0
	i.Likes = 0
	i.LikedBy = ""
	i.Deleted = false
	i.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, i); err != nil {
		return models.Idea{}, err
	}
	return i, nil
}

// Promote persists a bundled idea under its own id, making the document the
// item's identity from then on. Upsert keeps a double-fire idempotent.
func (s *Store) Promote(ctx context.Context, i models.Idea) error {
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": i.ID}, i,
		options.Replace().SetUpsert(true))
	return err
}

// UpdateLike writes the recomputed like count and liking set. Last write
// wins on concurrent toggles; counts re-derive from the set on the next one.
func (s *Store) UpdateLike(ctx context.Context, id string, likes int, likedBy string) error {
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

// SetDeleted soft-deletes an idea; derived views drop it, comments stay.
func (s *Store) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"deleted": deleted}})
	return err
}
