package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/eventbus"
	"portfolio/models"
	"portfolio/repositories"
)

var testAuthor = primitive.NewObjectID().Hex()

type fakePostStore struct {
	mu    sync.Mutex
	posts map[string]*models.BlogPost
	calls int

	listErr   error
	insertErr error
	updates   []map[string]any
}

func newFakePostStore(posts ...models.BlogPost) *fakePostStore {
	s := &fakePostStore{posts: map[string]*models.BlogPost{}}
	for i := range posts {
		p := posts[i]
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		s.posts[p.ID.Hex()] = &p
	}
	return s
}

func (s *fakePostStore) List(_ context.Context, f repositories.BlogPostFilter) ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
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

func (s *fakePostStore) FindPublishedBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, p := range s.posts {
		if p.Slug == slug && p.Published {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakePostStore) FindByID(_ context.Context, id string) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	p, ok := s.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakePostStore) Insert(_ context.Context, p *models.BlogPost) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.insertErr != nil {
		return "", s.insertErr
	}
	for _, existing := range s.posts {
		if existing.Slug == p.Slug {
			return "", repositories.ErrDuplicate
		}
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	s.posts[p.ID.Hex()] = &cp
	return p.ID.Hex(), nil
}

func (s *fakePostStore) UpdateFields(_ context.Context, id string, updates map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	p, ok := s.posts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	if slug, ok := updates["slug"].(string); ok {
		for otherID, other := range s.posts {
			if otherID != id && other.Slug == slug {
				return repositories.ErrDuplicate
			}
		}
	}
	s.updates = append(s.updates, updates)
	for k, v := range updates {
		switch k {
		case "title":
			p.Title = v.(string)
		case "slug":
			p.Slug = v.(string)
		case "content":
			p.Content = v.(string)
		case "excerpt":
			p.Excerpt = v.(*string)
		case "cover_image":
			p.CoverImage = v.(*string)
		case "published":
			p.Published = v.(bool)
		}
	}
	return nil
}

func (s *fakePostStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if _, ok := s.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

type fakeProjectStore struct {
	projects map[string]*models.Project
	order    []string
	calls    int
	updates  []map[string]any
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]*models.Project{}}
}

func (s *fakeProjectStore) List(_ context.Context, _ repositories.ProjectFilter) ([]models.Project, error) {
	s.calls++
	out := []models.Project{}
	for _, id := range s.order {
		if p, ok := s.projects[id]; ok {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (s *fakeProjectStore) FindByID(_ context.Context, id string) (*models.Project, error) {
	s.calls++
	p, ok := s.projects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProjectStore) Insert(_ context.Context, p *models.Project) (string, error) {
	s.calls++
	p.ID = primitive.NewObjectID()
	cp := *p
	s.projects[p.ID.Hex()] = &cp
	s.order = append(s.order, p.ID.Hex())
	return p.ID.Hex(), nil
}

func (s *fakeProjectStore) UpdateFields(_ context.Context, id string, updates map[string]any) error {
	s.calls++
	p, ok := s.projects[id]
	if !ok {
		return repositories.ErrNotFound
	}
	s.updates = append(s.updates, updates)
	if v, ok := updates["featured"].(bool); ok {
		p.Featured = v
	}
	if v, ok := updates["title"].(string); ok {
		p.Title = v
	}
	if v, ok := updates["tech_stack"].([]string); ok {
		p.TechStack = v
	}
	return nil
}

func (s *fakeProjectStore) Delete(_ context.Context, id string) error {
	s.calls++
	if _, ok := s.projects[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *fakeProjectStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.projects)), nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.User) (string, error) {
	if _, ok := s.users[u.Email]; ok {
		return "", repositories.ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	cp := *u
	s.users[u.Email] = &cp
	return u.ID.Hex(), nil
}

func (s *fakeUserStore) UpsertByEmail(_ context.Context, u *models.User) (*models.User, error) {
	existing, ok := s.users[u.Email]
	if !ok {
		u.ID = primitive.NewObjectID()
		u.Role = models.RoleUser
		cp := *u
		s.users[u.Email] = &cp
		return u, nil
	}
	existing.Name = u.Name
	existing.Provider = u.Provider
	existing.ProviderSub = u.ProviderSub
	cp := *existing
	return &cp, nil
}

func (s *fakeUserStore) SetRole(_ context.Context, email, role string) error {
	u, ok := s.users[email]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Role = role
	return nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, _ string, evt eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Close() {}
