package models

import "time"

// LinkPreview holds optional scraped metadata for a learning resource link.
type LinkPreview struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Domain      string `bson:"domain" json:"domain"`
	URL         string `bson:"url" json:"url"`
}

// Course is a learning resource (channel, course, book, podcast, article,
// platform). LikedBy is persisted as a list, matching comments.
type Course struct {
	ID          string       `bson:"_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Type        string       `bson:"type" json:"type"`
	Description string       `bson:"description" json:"description"`
	Link        string       `bson:"link" json:"link"`
	Preview     *LinkPreview `bson:"preview,omitempty" json:"preview,omitempty"`
	AddedBy     string       `bson:"added_by" json:"added_by"`
	AddedByRole string       `bson:"added_by_role" json:"added_by_role"`
	Likes       int          `bson:"likes" json:"likes"`
	LikedBy     []string     `bson:"liked_by" json:"liked_by"`
	Views       int          `bson:"views" json:"views"`
	Promoted    bool         `bson:"promoted_from_seed,omitempty" json:"promoted_from_seed,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}

// CourseTypes is the fixed type set for learning resources.
var CourseTypes = []string{"قناة يوتيوب", "كورس أونلاين", "منصة تعليمية", "مقالات", "كتب", "بودكاست"}
