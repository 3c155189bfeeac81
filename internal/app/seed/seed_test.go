package seed

import (
	"strings"
	"testing"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

func TestIdeas_IDsAndAttribution(t *testing.T) {
	items := Ideas(50)
	if len(items) != 50 {
		t.Fatalf("got %d ideas, want 50", len(items))
	}

	seen := map[string]bool{}
	for i, idea := range items {
		if !strings.HasPrefix(idea.ID, "static_muf_") {
			t.Fatalf("idea %d: id %q lacks the static_muf_ prefix", i, idea.ID)
		}
		if seen[idea.ID] {
			t.Fatalf("duplicate seed id %q", idea.ID)
		}
		seen[idea.ID] = true

		if idea.AuthorID != AuthorID || idea.Author != AuthorName {
			t.Errorf("idea %d: attribution %q/%q, want %q/%q",
				i, idea.Author, idea.AuthorID, AuthorName, AuthorID)
		}
		if !models.IsIdeaCategory(idea.Category) {
			t.Errorf("idea %d: category %q not in the fixed set", i, idea.Category)
		}
		if idea.LikedBy != "" {
			t.Errorf("idea %d: seed liking set must be empty, got %q", i, idea.LikedBy)
		}
		if idea.Deleted {
			t.Errorf("idea %d: seed content must not ship soft-deleted", i)
		}
	}
}

func TestIdeas_DefaultCount(t *testing.T) {
	if got := len(Ideas(0)); got != DefaultIdeaCount {
		t.Errorf("got %d, want %d", got, DefaultIdeaCount)
	}
}

func TestCourses_TypesAreValid(t *testing.T) {
	valid := map[string]bool{}
	for _, typ := range models.CourseTypes {
		valid[typ] = true
	}
	for _, c := range Courses() {
		if !strings.HasPrefix(c.ID, "static_course_") {
			t.Errorf("course %q: unexpected id shape", c.ID)
		}
		if !valid[c.Type] {
			t.Errorf("course %q: type %q not in the fixed set", c.ID, c.Type)
		}
	}
}

func TestQuotes_AreDefaultFlagged(t *testing.T) {
	for _, q := range Quotes() {
		if !q.IsDefault {
			t.Errorf("quote %q: seed quotes must carry IsDefault", q.ID)
		}
		if q.Text == "" || q.Author == "" {
			t.Errorf("quote %q: missing text or attribution", q.ID)
		}
	}
}
