package models

import "time"

// JournalPost is a storefront blog entry managed from the admin console.
type JournalPost struct {
	PostID     string    `json:"postId" bson:"postId"`
	Title      string    `json:"title" bson:"title"`
	Slug       string    `json:"slug" bson:"slug"`
	Excerpt    string    `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Body       string    `json:"body" bson:"body"`
	CoverImage string    `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Author     string    `json:"author,omitempty" bson:"author,omitempty"`
	Published  bool      `json:"published" bson:"published"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
