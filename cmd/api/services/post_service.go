package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/events"
	"portfolio/eventbus"
	"portfolio/forms"
	"portfolio/models"
	"portfolio/repositories"
)

// HomePostLimit is how many posts the home page blog section shows.
const HomePostLimit = 4

// PostService encapsulates blog post reads for the public site and CRUD for the admin.
type PostService struct {
	store   PostStore
	bus     eventbus.EventBus
	baseURL string
}

func NewPostService(store PostStore, bus eventbus.EventBus, baseURL string) *PostService {
	return &PostService{
		store:   store,
		bus:     bus,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListPublished returns the newest published posts; limit <= 0 means all.
func (s *PostService) ListPublished(ctx context.Context, limit int) ([]models.BlogPost, error) {
	published := true
	return s.store.List(ctx, repositories.BlogPostFilter{Published: &published, Limit: limit})
}

// GetPublished looks a post up by slug. Unpublished and missing posts both yield ErrPostNotFound.
func (s *PostService) GetPublished(ctx context.Context, slug string) (*models.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPostNotFound
	}
	p, err := s.store.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, mapNotFound(err, ErrPostNotFound)
	}
	return p, nil
}

// ListAll returns every post, drafts included, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	return s.store.List(ctx, repositories.BlogPostFilter{})
}

func (s *PostService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrPostNotFound)
	}
	return p, nil
}

// Create validates the draft and inserts it authored by authorID.
func (s *PostService) Create(ctx context.Context, draft forms.PostDraft, authorID string) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}

	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAuthor, authorID)
	}
	post := draft.ToInsert(author)
	id, err := s.store.Insert(ctx, post)
	if err != nil {
		return "", mapPostWriteError(err)
	}

	if post.Published {
		s.announce(ctx, id, post.Title, post.Slug)
	}
	return id, nil
}

// Update replaces the editable fields of a post.
func (s *PostService) Update(ctx context.Context, id string, draft forms.PostDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	prev, err := s.store.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err, ErrPostNotFound)
	}
	if err := s.store.UpdateFields(ctx, id, draft.ToUpdate()); err != nil {
		return mapPostWriteError(err)
	}

	if draft.Published && !prev.Published {
		s.announce(ctx, id, draft.Title, draft.Slug)
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return mapNotFound(s.store.Delete(ctx, id), ErrPostNotFound)
}

// TogglePublished flips the published flag only and returns the new value.
func (s *PostService) TogglePublished(ctx context.Context, id string) (bool, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, mapNotFound(err, ErrPostNotFound)
	}

	next := !p.Published
	if err := s.store.UpdateFields(ctx, id, map[string]any{"published": next}); err != nil {
		return false, mapNotFound(err, ErrPostNotFound)
	}

	if next {
		s.announce(ctx, id, p.Title, p.Slug)
	}
	return next, nil
}

func (s *PostService) announce(ctx context.Context, id, title, slug string) {
	evt := events.NewPostPublished(id, title, slug, s.baseURL)
	_ = publish(ctx, s.bus, evt.ID, evt)
}
