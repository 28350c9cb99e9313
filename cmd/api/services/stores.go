package services

import (
	"context"

	"portfolio/models"
	"portfolio/repositories"
)

// PostStore is the blog_posts surface the services need. *repositories.BlogPostRepository satisfies it.
type PostStore interface {
	List(ctx context.Context, f repositories.BlogPostFilter) ([]models.BlogPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	FindByID(ctx context.Context, id string) (*models.BlogPost, error)
	Insert(ctx context.Context, p *models.BlogPost) (string, error)
	UpdateFields(ctx context.Context, id string, updates map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ProjectStore interface {
	List(ctx context.Context, f repositories.ProjectFilter) ([]models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, p *models.Project) (string, error)
	UpdateFields(ctx context.Context, id string, updates map[string]any) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (string, error)
	UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error)
	SetRole(ctx context.Context, email, role string) error
}

var (
	_ PostStore    = (*repositories.BlogPostRepository)(nil)
	_ ProjectStore = (*repositories.ProjectRepository)(nil)
	_ UserStore    = (*repositories.UserRepository)(nil)
)
