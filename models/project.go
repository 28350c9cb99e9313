package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a showcased product.
// Collection: projects, displayed by sort_order ascending.
// Revenue and UsersCount are display labels such as "$5k/mo", never parsed.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description" json:"description"`
	ImageURL    *string            `bson:"image_url" json:"image_url"`
	TechStack   []string           `bson:"tech_stack" json:"tech_stack"`
	LiveURL     *string            `bson:"live_url" json:"live_url"`
	RepoURL     *string            `bson:"repo_url" json:"repo_url"`
	Featured    bool               `bson:"featured" json:"featured"`
	Revenue     *string            `bson:"revenue" json:"revenue"`
	UsersCount  *string            `bson:"users_count" json:"users_count"`
	SortOrder   int                `bson:"sort_order" json:"sort_order"`
}
