package models

import "time"

// Suggestion statuses. Pending moves to rejected or replied; replied and
// rejected are terminal in the exposed transitions (approved exists in stored
// data and in the admin filter, so it stays a recognized value).
const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
	SuggestionReplied  = "replied"
)

// Suggestion is a member message to the administrators: a suggestion,
// complaint, or development idea, with an optional admin reply.
type Suggestion struct {
	ID             string     `bson:"_id" json:"id"`
	Type           string     `bson:"type" json:"type"` // free-text label as typed
	SuggestionType string     `bson:"suggestion_type" json:"suggestion_type"`
	Title          string     `bson:"title" json:"title"`
	Content        string     `bson:"content" json:"content"`
	Author         string     `bson:"author" json:"author"`
	AuthorID       string     `bson:"author_id" json:"author_id"`
	Status         string     `bson:"status" json:"status"`
	ReplyContent   string     `bson:"reply_content,omitempty" json:"reply_content,omitempty"`
	RepliedBy      string     `bson:"replied_by,omitempty" json:"replied_by,omitempty"`
	RepliedAt      *time.Time `bson:"replied_at,omitempty" json:"replied_at,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// IsSuggestionStatus reports whether s is a recognized status value.
func IsSuggestionStatus(s string) bool {
	switch s {
	case SuggestionPending, SuggestionApproved, SuggestionRejected, SuggestionReplied:
		return true
	}
	return false
}
