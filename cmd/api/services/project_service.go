package services

import (
	"context"
	"strconv"
	"strings"

	"portfolio/config"
	"portfolio/forms"
	"portfolio/models"
	"portfolio/repositories"
)

// ProjectService encapsulates the showcase projects.
type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// List returns all projects by ascending sort order.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.store.List(ctx, repositories.ProjectFilter{})
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, draft forms.ProjectDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	p, err := draft.ToInsert()
	if err != nil {
		return "", err
	}
	return s.store.Insert(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, id string, draft forms.ProjectDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	updates, err := draft.ToUpdate()
	if err != nil {
		return err
	}
	return mapNotFound(s.store.UpdateFields(ctx, id, updates), ErrProjectNotFound)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return mapNotFound(s.store.Delete(ctx, id), ErrProjectNotFound)
}

// ToggleFeatured flips the featured flag only and returns the new value.
func (s *ProjectService) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return false, mapNotFound(err, ErrProjectNotFound)
	}
	next := !p.Featured
	if err := s.store.UpdateFields(ctx, id, map[string]any{"featured": next}); err != nil {
		return false, mapNotFound(err, ErrProjectNotFound)
	}
	return next, nil
}

// Seed inserts seeds in order when no project exists yet and reports how many were written.
func (s *ProjectService) Seed(ctx context.Context, seeds []config.ProjectSeed) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	inserted := 0
	for i, seed := range seeds {
		draft := forms.ProjectDraft{
			Title:       seed.Title,
			Description: seed.Description,
			TechStack:   strings.Join(seed.TechStack, ","),
			LiveURL:     seed.LiveURL,
			RepoURL:     seed.RepoURL,
			Featured:    seed.Featured,
			Revenue:     seed.Revenue,
			UsersCount:  seed.UsersCount,
			SortOrder:   strconv.Itoa(i),
		}
		if _, err := s.Create(ctx, draft); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
