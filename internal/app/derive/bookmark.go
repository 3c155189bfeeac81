package derive

import "github.com/rashamuf/museumhub/internal/domain/models"

// BookmarkAction tells the caller which write command to emit.
type BookmarkAction int

const (
	// BookmarkCreate inserts a new bookmark record stamped with the current
	// time.
	BookmarkCreate BookmarkAction = iota
	// BookmarkDelete removes the existing record by its own id.
	BookmarkDelete
)

// BookmarkResult is the planned write. DeleteID is set only for
// BookmarkDelete.
type BookmarkResult struct {
	Action   BookmarkAction
	DeleteID string
}

// ToggleBookmark plans the bookmark mutation for actorID against courseID,
// given the actor's cached bookmark list. Presence of a record is the sole
// state; no count is kept. Duplicate (actor, course) records are an anomaly
// the storage does not prevent, so deletion acts on the first match only.
func ToggleBookmark(bookmarks []models.Bookmark, actorID, courseID string) (BookmarkResult, error) {
	if actorID == "" {
		return BookmarkResult{}, ErrSignInRequired
	}
	for _, b := range bookmarks {
		if b.UserID == actorID && b.CourseID == courseID {
			return BookmarkResult{Action: BookmarkDelete, DeleteID: b.ID}, nil
		}
	}
	return BookmarkResult{Action: BookmarkCreate}, nil
}
