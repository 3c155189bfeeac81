package bookmarkstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("bookmarks")}
}

// Create inserts a bookmark record for a (user, resource) pair.
func (s *Store) Create(ctx context.Context, userID, courseID string) (models.Bookmark, error) {
	b := models.Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Bookmark{}, err
	}
	return b, nil
}

// ListByUser returns every bookmark record owned by one member. Toggle
// decisions read this instead of the cache snapshot, which only tracks the
// member the cache was started for.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var out []models.Bookmark
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes a bookmark record.
func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
