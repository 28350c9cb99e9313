package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a post written in the admin panel.
// Collection: blog_posts (unique index on slug)
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	Title      string             `bson:"title" json:"title"`
	Slug       string             `bson:"slug" json:"slug"`
	Excerpt    *string            `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	CoverImage *string            `bson:"cover_image" json:"cover_image"`
	Published  bool               `bson:"published" json:"published"`
	AuthorID   primitive.ObjectID `bson:"author_id,omitempty" json:"author_id"`
}
