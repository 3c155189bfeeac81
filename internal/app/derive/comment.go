package derive

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyComment rejects whitespace-only comment text.
	ErrEmptyComment = errors.New("comment text is empty")
	// ErrNoTarget rejects a comment with no selected idea.
	ErrNoTarget = errors.New("no comment target selected")
)

// ValidateComment blocks the write paths the client must never take: empty
// or whitespace-only text, a missing target, or an absent actor. A nil return
// means the caller may create the comment document (zero likes, empty liking
// set, no parent link, zero replies, not deleted, stamped now).
func ValidateComment(ideaID, text, actorID string) error {
	if actorID == "" {
		return ErrSignInRequired
	}
	if ideaID == "" {
		return ErrNoTarget
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyComment
	}
	return nil
}
