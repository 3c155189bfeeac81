package derive

import (
	"time"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Canonical accessor sets for the merged listings. Search fields mirror what
// each screen's search box matches against.

// IdeaAccessors drives the gallery, content and feed listings.
var IdeaAccessors = Accessors[models.Idea]{
	ID:        func(i models.Idea) string { return i.ID },
	CreatedAt: func(i models.Idea) time.Time { return i.CreatedAt },
	Deleted:   func(i models.Idea) bool { return i.Deleted },
	Category:  func(i models.Idea) string { return i.Category },
	Search:    func(i models.Idea) []string { return []string{i.Title, i.Content, i.Author} },
}

// CommentAccessors orders an idea's comment thread.
var CommentAccessors = Accessors[models.Comment]{
	ID:        func(c models.Comment) string { return c.ID },
	CreatedAt: func(c models.Comment) time.Time { return c.CreatedAt },
	Deleted:   func(c models.Comment) bool { return c.Deleted },
}

// CourseAccessors drives the learning-resources listing; Category carries
// the resource type.
var CourseAccessors = Accessors[models.Course]{
	ID:        func(c models.Course) string { return c.ID },
	CreatedAt: func(c models.Course) time.Time { return c.CreatedAt },
	Deleted:   func(models.Course) bool { return false },
	Category:  func(c models.Course) string { return c.Type },
	Search:    func(c models.Course) []string { return []string{c.Title, c.Description} },
}

// QuoteAccessors drives the quotes listing.
var QuoteAccessors = Accessors[models.Quote]{
	ID:        func(q models.Quote) string { return q.ID },
	CreatedAt: func(q models.Quote) time.Time { return q.CreatedAt },
	Deleted:   func(models.Quote) bool { return false },
	Search:    func(q models.Quote) []string { return []string{q.Text, q.Author} },
}

// SuggestionAccessors orders suggestion histories; Category carries the
// status for the admin filter.
var SuggestionAccessors = Accessors[models.Suggestion]{
	ID:        func(s models.Suggestion) string { return s.ID },
	CreatedAt: func(s models.Suggestion) time.Time { return s.CreatedAt },
	Deleted:   func(models.Suggestion) bool { return false },
	Category:  func(s models.Suggestion) string { return s.Status },
}

// UserAccessors drives the members directory; search matches name, email and
// specialty.
var UserAccessors = Accessors[models.User]{
	ID:        func(u models.User) string { return u.ID },
	CreatedAt: func(u models.User) time.Time { return u.CreatedAt },
	Deleted:   func(models.User) bool { return false },
	Search:    func(u models.User) []string { return []string{u.Name, u.Email, u.Specialty} },
}
