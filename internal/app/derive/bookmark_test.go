package derive

import (
	"testing"
	"time"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

func TestToggleBookmark_RequiresActor(t *testing.T) {
	_, err := ToggleBookmark(nil, "", "c1")
	if err != ErrSignInRequired {
		t.Fatalf("got %v, want ErrSignInRequired", err)
	}
}

func TestToggleBookmark_IsItsOwnInverse(t *testing.T) {
	var cached []models.Bookmark

	// First toggle: no record yet, so create one.
	res, err := ToggleBookmark(cached, "u1", "c1")
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if res.Action != BookmarkCreate {
		t.Fatalf("first toggle: got %v, want BookmarkCreate", res.Action)
	}

	// Simulate the subscription echoing the created record back.
	cached = append(cached, models.Bookmark{
		ID: "bm1", UserID: "u1", CourseID: "c1", CreatedAt: time.Now(),
	})

	// Second toggle: delete it by its own id.
	res, err = ToggleBookmark(cached, "u1", "c1")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if res.Action != BookmarkDelete || res.DeleteID != "bm1" {
		t.Fatalf("second toggle: got %+v, want delete of bm1", res)
	}
}

func TestToggleBookmark_ScopedToActorAndCourse(t *testing.T) {
	cached := []models.Bookmark{
		{ID: "other-user", UserID: "u2", CourseID: "c1"},
		{ID: "other-course", UserID: "u1", CourseID: "c2"},
	}

	res, err := ToggleBookmark(cached, "u1", "c1")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if res.Action != BookmarkCreate {
		t.Errorf("got %v, want BookmarkCreate (no matching pair in cache)", res.Action)
	}
}

func TestToggleBookmark_DuplicateRecordsDeleteFirstMatch(t *testing.T) {
	cached := []models.Bookmark{
		{ID: "dup1", UserID: "u1", CourseID: "c1"},
		{ID: "dup2", UserID: "u1", CourseID: "c1"},
	}

	res, err := ToggleBookmark(cached, "u1", "c1")
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if res.Action != BookmarkDelete || res.DeleteID != "dup1" {
		t.Errorf("got %+v, want delete of the first duplicate", res)
	}
}
