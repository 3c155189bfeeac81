package livecache

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// MongoSource is the production Source, backed by MongoDB change streams.
// Change streams require a replica set; on a standalone server Watch fails
// and the manager serves the initial snapshot only.
type MongoSource struct {
	db *mongo.Database
}

// NewMongoSource wraps a database handle.
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

// Watch opens a change stream on the named collection and pumps change
// events into the returned channel as bare signals. Consecutive events
// coalesce; the channel closes when the stream ends.
func (s *MongoSource) Watch(ctx context.Context, coll string) (<-chan struct{}, error) {
	cs, err := s.db.Collection(coll).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer cs.Close(context.Background())
		for cs.Next(ctx) {
			select {
			case ch <- struct{}{}:
			default:
				// A refresh is already pending; this event rides along.
			}
		}
	}()
	return ch, nil
}

func (s *MongoSource) Ideas(ctx context.Context, limit int64) ([]models.Idea, error) {
	return findAll[models.Idea](ctx, s.db.Collection(CollIdeas), bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
}

func (s *MongoSource) Comments(ctx context.Context, limit int64) ([]models.Comment, error) {
	return findAll[models.Comment](ctx, s.db.Collection(CollComments), bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
}

func (s *MongoSource) Courses(ctx context.Context) ([]models.Course, error) {
	return findAll[models.Course](ctx, s.db.Collection(CollCourses), bson.M{})
}

func (s *MongoSource) Quotes(ctx context.Context) ([]models.Quote, error) {
	return findAll[models.Quote](ctx, s.db.Collection(CollQuotes), bson.M{})
}

func (s *MongoSource) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return findAll[models.Suggestion](ctx, s.db.Collection(CollSuggestions), bson.M{})
}

func (s *MongoSource) Users(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.db.Collection(CollUsers), bson.M{})
}

func (s *MongoSource) Bookmarks(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return findAll[models.Bookmark](ctx, s.db.Collection(CollBookmarks), bson.M{"user_id": userID})
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
