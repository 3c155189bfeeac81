package models

import "time"

// Idea is a member-posted article or thought.
//
// LikedBy is persisted as a comma-delimited string of user ids. That shape is
// a compatibility constraint with the existing collection, not a design
// choice; use derive.ParseLikedByString at the boundary and never split it by
// hand elsewhere.
type Idea struct {
	ID         string    `bson:"_id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Category   string    `bson:"category" json:"category"`
	Content    string    `bson:"content" json:"content"`
	Author     string    `bson:"author" json:"author"`
	AuthorID   string    `bson:"author_id" json:"author_id"`
	AuthorRole string    `bson:"author_role" json:"author_role"`
	Views      int       `bson:"views" json:"views"`
	Likes      int       `bson:"likes" json:"likes"`
	LikedBy    string    `bson:"liked_by" json:"liked_by"`
	Featured   bool      `bson:"featured" json:"featured"`
	Deleted    bool      `bson:"deleted" json:"deleted"`
	Promoted   bool      `bson:"promoted_from_seed,omitempty" json:"promoted_from_seed,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// IdeaCategories is the fixed category set for ideas.
var IdeaCategories = []string{"فلسفة", "تقنية", "أدب", "علوم", "فن", "اجتماع"}

// ContentCategories is the subset shown on the knowledge-content screen.
var ContentCategories = []string{"أدب", "علوم", "تقنية", "فن"}

// IsIdeaCategory reports whether cat is one of the fixed idea categories.
func IsIdeaCategory(cat string) bool {
	for _, c := range IdeaCategories {
		if c == cat {
			return true
		}
	}
	return false
}
