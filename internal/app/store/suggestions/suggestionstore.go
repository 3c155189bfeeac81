package suggestionstore

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
	return &Store{c: db.Collection("suggestions")}
}

// GetByID loads a suggestion by document id.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Suggestion, error) {
	var sg models.Suggestion
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sg); err != nil {
		return nil, err
	}
	return &sg, nil
}

// Create inserts a new suggestion in the pending state.
func (s *Store) Create(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	sg.ID = uuid.NewString()
	sg.Status = models.SuggestionPending
	sg.ReplyContent = ""
	sg.RepliedBy = ""
	sg.RepliedAt = nil
	sg.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, sg); err != nil {
		return models.Suggestion{}, err
	}
	return sg, nil
}

// SetStatus overwrites the status field only; reply fields are untouched.
func (s *Store) SetStatus(ctx context.Context, id, status string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}})
	return err
}

// Reply marks a suggestion replied and records the reply body, the replier
// and the timestamp in one write.
func (s *Store) Reply(ctx context.Context, id, body, repliedBy string) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":        models.SuggestionReplied,
		"reply_content": body,
		"replied_by":    repliedBy,
		"replied_at":    now,
	}})
	return err
}

// DeleteByID removes a suggestion outright.
func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
