package commentstore

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
	return &Store{c: db.Collection("comments")}
}

// GetByID loads a comment by document id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new comment with a fresh id and an empty liking set.
func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = uuid.NewString()
	c.Likes = 0
	c.LikedBy = []string{}
	c.Deleted = false
	c.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
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

// SetDeleted soft-deletes a comment.
func (s *Store) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"deleted": deleted}})
	return err
}
