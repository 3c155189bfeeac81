package testutil

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test account with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	user := models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Role:          role,
		AuthMethod:    models.AuthMethodGoogle,
		EmailVerified: true,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateIdea inserts a persisted idea authored by the given user.
func (f *Fixtures) CreateIdea(ctx context.Context, title, category, authorID string) models.Idea {
	f.t.Helper()

	idea := models.Idea{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Content:   fmt.Sprintf("نص تجريبي عن %s", title),
		Author:    "Test Author",
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("ideas").InsertOne(ctx, idea); err != nil {
		f.t.Fatalf("failed to create test idea: %v", err)
	}
	return idea
}

// CreateComment inserts a comment on the given idea.
func (f *Fixtures) CreateComment(ctx context.Context, ideaID, userID, text string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ID:         uuid.NewString(),
		IdeaID:     ideaID,
		Text:       text,
		UserID:     userID,
		AuthorName: "Test Author",
		LikedBy:    []string{},
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("comments").InsertOne(ctx, comment); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

// CreateCourse inserts a persisted learning resource.
func (f *Fixtures) CreateCourse(ctx context.Context, title, courseType, addedBy string) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:          uuid.NewString(),
		Title:       title,
		Type:        courseType,
		Description: fmt.Sprintf("وصف تجريبي لـ %s", title),
		Link:        "https://example.edu/course",
		AddedBy:     addedBy,
		LikedBy:     []string{},
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateBookmark inserts a bookmark for the given user and course.
func (f *Fixtures) CreateBookmark(ctx context.Context, userID, courseID string) models.Bookmark {
	f.t.Helper()

	bm := models.Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("bookmarks").InsertOne(ctx, bm); err != nil {
		f.t.Fatalf("failed to create test bookmark: %v", err)
	}
	return bm
}

// CreateSuggestion inserts a pending suggestion from the given author.
func (f *Fixtures) CreateSuggestion(ctx context.Context, title, authorID string) models.Suggestion {
	f.t.Helper()

	sg := models.Suggestion{
		ID:        uuid.NewString(),
		Type:      "فكرة",
		Title:     title,
		Content:   "محتوى تجريبي",
		Author:    "Test Author",
		AuthorID:  authorID,
		Status:    models.SuggestionPending,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("suggestions").InsertOne(ctx, sg); err != nil {
		f.t.Fatalf("failed to create test suggestion: %v", err)
	}
	return sg
}
