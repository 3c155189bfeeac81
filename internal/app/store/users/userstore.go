package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// ErrAdminImmutable is returned when a moderation action targets an admin
// account.
var ErrAdminImmutable = errors.New("admin accounts cannot be moderated")

// Identity is what the federated provider asserts about a person. The
// provider's stable uid doubles as the account's document id.
type Identity struct {
	UID           string
	Name          string
	Email         string
	PhotoURL      string
	Method        string
	EmailVerified bool
}

// Fetch loads an account by id. Returns mongo.ErrNoDocuments if absent.
func (s *Store) Fetch(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up an account by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FetchOrCreate resolves a federated identity to a persisted account. An
// existing account gets its profile fields and last-login refreshed; a new
// identity becomes a member account keyed by the provider uid. The caller is
// responsible for the ban check on the returned account.
func (s *Store) FetchOrCreate(ctx context.Context, id Identity) (*models.User, error) {
	now := time.Now().UTC()

	var existing models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id.UID}).Decode(&existing)
	switch {
	case err == nil:
		set := bson.M{
			"name":           normalize.Name(id.Name),
			"photo_url":      id.PhotoURL,
			"email_verified": id.EmailVerified,
			"last_login":     now,
		}
		if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id.UID}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
		existing.Name = normalize.Name(id.Name)
		existing.PhotoURL = id.PhotoURL
		existing.EmailVerified = id.EmailVerified
		existing.LastLogin = &now
		return &existing, nil

	case errors.Is(err, mongo.ErrNoDocuments):
		u := models.User{
			ID:            id.UID,
			Name:          normalize.Name(id.Name),
			Email:         normalize.Email(id.Email),
			Role:          models.RoleMember,
			AuthMethod:    normalize.AuthMethod(id.Method),
			EmailVerified: id.EmailVerified,
			PhotoURL:      id.PhotoURL,
			CreatedAt:     now,
			LastLogin:     &now,
		}
		if _, err := s.c.InsertOne(ctx, u); err != nil {
			if wafflemongo.IsDup(err) {
				// Lost a concurrent first-login race; the other insert wins.
				return s.Fetch(ctx, id.UID)
			}
			return nil, err
		}
		return &u, nil

	default:
		return nil, err
	}
}

// SetBanned flips the ban flag on a member account. Admin accounts are
// refused.
func (s *Store) SetBanned(ctx context.Context, id string, banned bool) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "role": bson.M{"$ne": models.RoleAdmin}},
		bson.M{"$set": bson.M{"is_banned": banned}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either absent or an admin; check which for the right error.
		if u, ferr := s.Fetch(ctx, id); ferr == nil && u.Role == models.RoleAdmin {
			return ErrAdminImmutable
		}
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateSpecialty sets a member's self-described specialty.
func (s *Store) UpdateSpecialty(ctx context.Context, id, specialty string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"specialty": normalize.Name(specialty)}})
	return err
}
