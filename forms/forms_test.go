package forms

import (
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/models"
)

func TestPostFormDerivesSlugWhileCreating(t *testing.T) {
	f := NewPostForm()
	f.SetTitle("My Cool Post!!")
	assert.Equal(t, "my-cool-post", f.Draft.Slug)

	f.SetTitle("My Cooler Post")
	assert.Equal(t, "my-cooler-post", f.Draft.Slug)

	f.SetSlug("custom")
	f.SetTitle("Another Title")
	assert.Equal(t, "custom", f.Draft.Slug)
}

func TestPostFormLoadFreezesSlug(t *testing.T) {
	excerpt := "short"
	post := &models.BlogPost{
		ID:      primitive.NewObjectID(),
		Title:   "Old Title",
		Slug:    "old-title",
		Excerpt: &excerpt,
		Content: "body",
	}

	f := NewPostForm()
	f.Load(post)
	require.True(t, f.IsEditing())
	assert.Equal(t, post.ID.Hex(), f.EditingID())
	assert.Equal(t, "short", f.Draft.Excerpt)
	assert.Equal(t, "", f.Draft.CoverImage)

	f.SetTitle("Brand New Title")
	assert.Equal(t, "old-title", f.Draft.Slug)
	assert.Equal(t, "Brand New Title", f.Draft.Title)

	f.Reset()
	assert.False(t, f.IsEditing())
	assert.Equal(t, PostDraft{}, f.Draft)
	f.SetTitle("Fresh")
	assert.Equal(t, "fresh", f.Draft.Slug)
}

func TestPostFormFromInput(t *testing.T) {
	tests := []struct {
		name string
		in   PostInput
		want string
	}{
		{"auto slug on create", PostInput{PostDraft: PostDraft{Title: "Hello World", Slug: "stale"}, SlugAuto: true}, "hello-world"},
		{"blank slug on create", PostInput{PostDraft: PostDraft{Title: "Hello World"}}, "hello-world"},
		{"manual slug on create", PostInput{PostDraft: PostDraft{Title: "Hello World", Slug: "hi"}}, "hi"},
		{"editing keeps slug", PostInput{PostDraft: PostDraft{Title: "Renamed", Slug: "old"}, EditingID: "abc", SlugAuto: true}, "old"},
		{"editing blank slug stays blank", PostInput{PostDraft: PostDraft{Title: "Renamed"}, EditingID: "abc"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := PostFormFromInput(tt.in)
			assert.Equal(t, tt.want, f.Draft.Slug)
		})
	}
}

func TestInputFromValuesKeepsDraft(t *testing.T) {
	in := PostInputFromValues(url.Values{
		"title":     {"Half written"},
		"slug":      {"half"},
		"content":   {"Some words"},
		"published": {"maybe"},
		"slug_auto": {"on"},
	})
	assert.Equal(t, "Half written", in.Title)
	assert.Equal(t, "Some words", in.Content)
	assert.False(t, in.Published)
	assert.True(t, in.SlugAuto)

	p := ProjectInputFromValues(url.Values{
		"title":      {"ShipFast"},
		"tech_stack": {"Go, Mongo"},
		"featured":   {"true"},
		"sort_order": {"x"},
		"editing_id": {"abc"},
	})
	assert.Equal(t, "ShipFast", p.Title)
	assert.Equal(t, "Go, Mongo", p.TechStack)
	assert.True(t, p.Featured)
	assert.Equal(t, "x", p.SortOrder)
	assert.Equal(t, "abc", p.EditingID)
}

func TestPostDraftValidateAndConvert(t *testing.T) {
	var verr *ValidationError
	err := PostDraft{Title: "t", Slug: "s"}.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Title, slug, and content are required", verr.Message)
	assert.NoError(t, PostDraft{Title: "t", Slug: "s", Content: "c"}.Validate())

	author := primitive.NewObjectID()
	p := PostDraft{Title: "t", Slug: "s", Content: "c", Excerpt: "  ", Published: true}.ToInsert(author)
	assert.Nil(t, p.Excerpt)
	assert.Nil(t, p.CoverImage)
	assert.Equal(t, author, p.AuthorID)
	assert.True(t, p.Published)

	upd := PostDraft{Title: "t", Slug: "s", Content: "c", CoverImage: "https://img"}.ToUpdate()
	assert.NotContains(t, upd, "author_id")
	assert.Equal(t, "https://img", *upd["cover_image"].(*string))
}

func TestProjectDraft(t *testing.T) {
	d := ProjectDraft{Title: "ShipFast", TechStack: "React,  TypeScript ,,Go", SortOrder: " 3 "}
	require.NoError(t, d.Validate())

	p, err := d.ToInsert()
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "TypeScript", "Go"}, p.TechStack)
	assert.Equal(t, 3, p.SortOrder)
	assert.Nil(t, p.LiveURL)

	back := LoadProject(p)
	assert.Equal(t, "React, TypeScript, Go", back.TechStack)
	assert.Equal(t, "3", back.SortOrder)

	var verr *ValidationError
	require.True(t, errors.As(ProjectDraft{}.Validate(), &verr))
	assert.Equal(t, "Title is required", verr.Message)

	_, err = ProjectDraft{Title: "x", SortOrder: "first"}.ToUpdate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "sort_order", verr.Field)

	assert.Equal(t, "0", NewProjectDraft().SortOrder)
}

func TestSubmitGuardAcceptsOnce(t *testing.T) {
	g := NewSubmitGuard(time.Minute)
	tok := g.Issue()

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Consume(tok) {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, accepted.Load())

	assert.False(t, g.Consume(""))
	assert.False(t, g.Consume("never-issued"))
}

func TestSubmitGuardExpires(t *testing.T) {
	g := NewSubmitGuard(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	tok := g.Issue()
	now = now.Add(2 * time.Minute)
	assert.False(t, g.Consume(tok))
}
