package router

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/eventbus"
	"portfolio/models"
	"portfolio/repositories"
)

type memPosts struct {
	mu    sync.Mutex
	posts []*models.BlogPost
	calls int
	err   error
}

func (s *memPosts) hit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *memPosts) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memPosts) List(_ context.Context, f repositories.BlogPostFilter) ([]models.BlogPost, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.BlogPost{}
	for _, p := range s.posts {
		if f.Published != nil && p.Published != *f.Published {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *memPosts) FindPublishedBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Slug == slug && p.Published {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memPosts) FindByID(_ context.Context, id string) (*models.BlogPost, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID.Hex() == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memPosts) Insert(_ context.Context, p *models.BlogPost) (string, error) {
	if err := s.hit(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.posts {
		if existing.Slug == p.Slug {
			return "", repositories.ErrDuplicate
		}
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	s.posts = append(s.posts, &cp)
	return p.ID.Hex(), nil
}

func (s *memPosts) UpdateFields(_ context.Context, id string, updates map[string]any) error {
	if err := s.hit(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID.Hex() != id {
			continue
		}
		if v, ok := updates["published"].(bool); ok {
			p.Published = v
		}
		if v, ok := updates["title"].(string); ok {
			p.Title = v
		}
		return nil
	}
	return repositories.ErrNotFound
}

func (s *memPosts) Delete(_ context.Context, id string) error {
	if err := s.hit(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID.Hex() == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type memProjects struct {
	mu       sync.Mutex
	projects []*models.Project
	calls    int

	// hang makes List wait until its context ends.
	hang bool
}

func (s *memProjects) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memProjects) List(ctx context.Context, _ repositories.ProjectFilter) ([]models.Project, error) {
	if s.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := []models.Project{}
	for _, p := range s.projects {
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *memProjects) FindByID(_ context.Context, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, p := range s.projects {
		if p.ID.Hex() == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memProjects) Insert(_ context.Context, p *models.Project) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	p.ID = primitive.NewObjectID()
	cp := *p
	s.projects = append(s.projects, &cp)
	return p.ID.Hex(), nil
}

func (s *memProjects) UpdateFields(_ context.Context, id string, updates map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, p := range s.projects {
		if p.ID.Hex() == id {
			if v, ok := updates["featured"].(bool); ok {
				p.Featured = v
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (s *memProjects) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i, p := range s.projects {
		if p.ID.Hex() == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (s *memProjects) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.projects)), nil
}

type memUsers struct {
	users []*models.User
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memUsers) Insert(_ context.Context, u *models.User) (string, error) {
	u.ID = primitive.NewObjectID()
	cp := *u
	s.users = append(s.users, &cp)
	return u.ID.Hex(), nil
}

func (s *memUsers) UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error) {
	if existing, err := s.FindByEmail(ctx, u.Email); err == nil {
		return existing, nil
	}
	if _, err := s.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *memUsers) SetRole(_ context.Context, email, role string) error {
	for _, u := range s.users {
		if u.Email == email {
			u.Role = role
			return nil
		}
	}
	return repositories.ErrNotFound
}

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (b *recordingBus) Publish(_ context.Context, _ string, evt eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Close() {}

func (b *recordingBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}
