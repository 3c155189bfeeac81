package quotestore

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
	return &Store{c: db.Collection("quotes")}
}

// Create inserts a community quote. Bundled quotes never pass through here;
// they live only in the static tables.
func (s *Store) Create(ctx context.Context, q models.Quote) (models.Quote, error) {
	q.ID = uuid.NewString()
	q.IsDefault = false
	q.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, q); err != nil {
		return models.Quote{}, err
	}
	return q, nil
}

// DeleteByID removes a community quote.
func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
