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

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(d *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: d.Collection(db.CollectionProjects)}
}

type ProjectFilter struct {
	Featured *bool
	Limit    int
}

// List returns projects ordered by sort_order asc, then creation time.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "created_at", Value: 1},
	})
	if f.Limit > 0 {
		findOpts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Project](ctx, cur)
}

func (r *ProjectRepository) FindByID(ctx context.Context, hexID string) (*models.Project, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Count returns the number of stored projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) (string, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", mapError(err)
	}
	return idHex(res.InsertedID), nil
}

func (r *ProjectRepository) UpdateFields(ctx context.Context, hexID string, updates map[string]any) error {
	return updateFields(ctx, r.col, hexID, updates)
}

func (r *ProjectRepository) Delete(ctx context.Context, hexID string) error {
	return deleteByID(ctx, r.col, hexID)
}
