package models

import "time"

// Bookmark marks a course saved by a user. At most one bookmark per
// (user, course) pair is meaningful; nothing prevents duplicates at the
// storage level, so readers must treat extras as an anomaly and act on the
// first match.
type Bookmark struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	CourseID  string    `bson:"course_id" json:"course_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
