package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio/db"
	"portfolio/models"
)

type BlogPostRepository struct {
	col *mongo.Collection
}

func NewBlogPostRepository(d *mongo.Database) *BlogPostRepository {
	return &BlogPostRepository{col: d.Collection(db.CollectionBlogPosts)}
}

// BlogPostFilter narrows List. A nil Published matches both states; Limit <= 0 means no limit.
type BlogPostFilter struct {
	Published *bool
	Limit     int
}

// List returns posts ordered by created_at desc.
func (r *BlogPostRepository) List(ctx context.Context, f BlogPostFilter) ([]models.BlogPost, error) {
	filter := bson.M{}
	if f.Published != nil {
		filter["published"] = *f.Published
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	if f.Limit > 0 {
		findOpts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BlogPost](ctx, cur)
}

// FindPublishedBySlug returns the single published post with the slug.
// An unpublished post is indistinguishable from a missing one.
func (r *BlogPostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := r.col.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&p)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// FindByID returns a post by its ObjectID hex.
func (r *BlogPostRepository) FindByID(ctx context.Context, hexID string) (*models.BlogPost, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	var p models.BlogPost
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Insert stores a new post and returns its id.
func (r *BlogPostRepository) Insert(ctx context.Context, p *models.BlogPost) (string, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", mapError(err)
	}
	return idHex(res.InsertedID), nil
}

// UpdateFields sets the given fields and updated_at on the post.
func (r *BlogPostRepository) UpdateFields(ctx context.Context, hexID string, updates map[string]any) error {
	return updateFields(ctx, r.col, hexID, updates)
}

// Delete removes a post by id.
func (r *BlogPostRepository) Delete(ctx context.Context, hexID string) error {
	return deleteByID(ctx, r.col, hexID)
}
