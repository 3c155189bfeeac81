package models

import "time"

// Quote is a short attributed saying shown on the quotes wall. Seed quotes
// carry IsDefault=true and are never deletable through normal controls.
type Quote struct {
	ID        string    `bson:"_id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author" json:"author"`
	AddedBy   string    `bson:"added_by,omitempty" json:"added_by,omitempty"`
	IsDefault bool      `bson:"is_default" json:"is_default"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
