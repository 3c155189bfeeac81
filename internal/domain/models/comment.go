package models

import "time"

// Comment is attached to an idea. Unlike ideas, LikedBy is persisted as a
// list. ParentCommentID and Replies exist in the stored documents but no
// threading UI uses them yet.
type Comment struct {
	ID              string    `bson:"_id" json:"id"`
	IdeaID          string    `bson:"idea_id" json:"idea_id"`
	Text            string    `bson:"text" json:"text"`
	UserID          string    `bson:"user_id" json:"user_id"`
	AuthorName      string    `bson:"author_name" json:"author_name"`
	AuthorRole      string    `bson:"author_role" json:"author_role"`
	Likes           int       `bson:"likes" json:"likes"`
	LikedBy         []string  `bson:"liked_by" json:"liked_by"`
	ParentCommentID string    `bson:"parent_comment_id,omitempty" json:"parent_comment_id,omitempty"`
	Replies         int       `bson:"replies" json:"replies"`
	Deleted         bool      `bson:"deleted" json:"deleted"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
