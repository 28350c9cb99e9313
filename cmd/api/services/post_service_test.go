package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/eventbus"
	"portfolio/events"
	"portfolio/forms"
	"portfolio/models"
)

func TestPostServiceCreateValidatesBeforeStore(t *testing.T) {
	store := newFakePostStore()
	svc := NewPostService(store, nil, "http://localhost:8080")

	_, err := svc.Create(context.Background(), forms.PostDraft{Title: "Hello", Slug: "hello"}, testAuthor)

	var verr *forms.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Title, slug, and content are required", verr.Message)
	assert.Equal(t, 0, store.calls)
}

func TestPostServiceCreateDuplicateSlug(t *testing.T) {
	store := newFakePostStore(models.BlogPost{Title: "A", Slug: "taken", Content: "x"})
	svc := NewPostService(store, nil, "")

	_, err := svc.Create(context.Background(), forms.PostDraft{Title: "B", Slug: "taken", Content: "y"}, testAuthor)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestPostServiceCreatePublishedAnnounces(t *testing.T) {
	bus := &recordingBus{}
	store := newFakePostStore()
	svc := NewPostService(store, bus, "https://mikhail.dev/")

	id, err := svc.Create(context.Background(), forms.PostDraft{Title: "Hi", Slug: "hi", Content: "c", Published: true}, testAuthor)
	require.NoError(t, err)
	require.Len(t, bus.events, 1)

	got, err := eventbus.DecodeJSON[events.PostPublishedEvent](bus.events[0])
	require.NoError(t, err)
	assert.Equal(t, id, got.PostID)
	assert.Equal(t, "https://mikhail.dev/blog/hi", got.URL)
	assert.Equal(t, events.PostPublished, got.Type)

	_, err = svc.Create(context.Background(), forms.PostDraft{Title: "Draft", Slug: "draft", Content: "c"}, testAuthor)
	require.NoError(t, err)
	assert.Len(t, bus.events, 1)
}

func TestPostServicePublishFailureDoesNotFailWrite(t *testing.T) {
	bus := &recordingBus{err: errors.New("broker down")}
	svc := NewPostService(newFakePostStore(), bus, "")

	_, err := svc.Create(context.Background(), forms.PostDraft{Title: "Hi", Slug: "hi", Content: "c", Published: true}, testAuthor)
	assert.NoError(t, err)
}

func TestPostServiceTogglePublishedFlipsOnlyThatField(t *testing.T) {
	post := models.BlogPost{Title: "T", Slug: "t", Content: "c", Published: false}
	store := newFakePostStore(post)
	var id string
	for k := range store.posts {
		id = k
	}
	svc := NewPostService(store, nil, "")

	next, err := svc.TogglePublished(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, next)
	require.Len(t, store.updates, 1)
	assert.Equal(t, map[string]any{"published": true}, store.updates[0])

	next, err = svc.TogglePublished(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, next)

	_, err = svc.TogglePublished(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostServiceGetPublishedHidesDrafts(t *testing.T) {
	store := newFakePostStore(
		models.BlogPost{Title: "Draft", Slug: "draft", Content: "c"},
		models.BlogPost{Title: "Live", Slug: "live", Content: "c", Published: true},
	)
	svc := NewPostService(store, nil, "")

	_, err := svc.GetPublished(context.Background(), "draft")
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.GetPublished(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.GetPublished(context.Background(), "")
	assert.ErrorIs(t, err, ErrPostNotFound)

	p, err := svc.GetPublished(context.Background(), "live")
	require.NoError(t, err)
	assert.Equal(t, "Live", p.Title)
}

func TestPostServiceListPublishedNewestFirst(t *testing.T) {
	now := time.Now()
	var posts []models.BlogPost
	for i := 0; i < 6; i++ {
		posts = append(posts, models.BlogPost{
			Title:     "p",
			Slug:      string(rune('a' + i)),
			Content:   "c",
			Published: i != 5,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := NewPostService(newFakePostStore(posts...), nil, "")

	got, err := svc.ListPublished(context.Background(), HomePostLimit)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "e", got[0].Slug)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestPostServiceUpdate(t *testing.T) {
	bus := &recordingBus{}
	store := newFakePostStore(
		models.BlogPost{Title: "One", Slug: "one", Content: "c"},
		models.BlogPost{Title: "Two", Slug: "two", Content: "c"},
	)
	var oneID string
	for id, p := range store.posts {
		if p.Slug == "one" {
			oneID = id
		}
	}
	svc := NewPostService(store, bus, "")

	err := svc.Update(context.Background(), oneID, forms.PostDraft{Title: "One", Slug: "two", Content: "c"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	err = svc.Update(context.Background(), oneID, forms.PostDraft{Title: "One v2", Slug: "one", Content: "new", Published: true})
	require.NoError(t, err)
	assert.Equal(t, "One v2", store.posts[oneID].Title)
	assert.Len(t, bus.events, 1)

	err = svc.Update(context.Background(), "missing", forms.PostDraft{Title: "x", Slug: "x", Content: "x"})
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrPostNotFound)
	assert.NoError(t, svc.Delete(context.Background(), oneID))
}

func TestPostServiceSurfacesStoreErrorsVerbatim(t *testing.T) {
	store := newFakePostStore()
	store.insertErr = errors.New("connection reset by peer")
	svc := NewPostService(store, nil, "")

	_, err := svc.Create(context.Background(), forms.PostDraft{Title: "a", Slug: "a", Content: "a"}, testAuthor)
	require.Error(t, err)
	assert.Equal(t, "connection reset by peer", err.Error())
}

func TestPostServiceCreateRejectsMalformedAuthor(t *testing.T) {
	store := newFakePostStore()
	svc := NewPostService(store, nil, "")

	_, err := svc.Create(context.Background(), forms.PostDraft{Title: "Hi", Slug: "hi", Content: "c"}, "not-an-id")
	assert.ErrorIs(t, err, ErrInvalidAuthor)
	assert.Equal(t, 0, store.calls)

	_, err = svc.Create(context.Background(), forms.PostDraft{Title: "Hi", Slug: "hi", Content: "c"}, "")
	assert.ErrorIs(t, err, ErrInvalidAuthor)
}

func TestPostServiceCreateKeepsAuthor(t *testing.T) {
	store := newFakePostStore()
	svc := NewPostService(store, nil, "")

	id, err := svc.Create(context.Background(), forms.PostDraft{Title: "Hi", Slug: "hi", Content: "c"}, testAuthor)
	require.NoError(t, err)
	assert.Equal(t, testAuthor, store.posts[id].AuthorID.Hex())
}
