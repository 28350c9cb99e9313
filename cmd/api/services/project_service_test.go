package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/config"
	"portfolio/forms"
)

func TestProjectServiceCreateParsesTechStack(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)

	id, err := svc.Create(context.Background(), forms.ProjectDraft{Title: "ShipFast", TechStack: "React,  TypeScript ,,Go"})
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "TypeScript", "Go"}, p.TechStack)
}

func TestProjectServiceValidation(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)

	var verr *forms.ValidationError
	_, err := svc.Create(context.Background(), forms.ProjectDraft{Title: "   "})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Title is required", verr.Message)

	_, err = svc.Create(context.Background(), forms.ProjectDraft{Title: "x", SortOrder: "1.5"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, store.calls)
}

func TestProjectServiceToggleFeatured(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)
	id, err := svc.Create(context.Background(), forms.ProjectDraft{Title: "x"})
	require.NoError(t, err)

	next, err := svc.ToggleFeatured(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, next)
	assert.Equal(t, map[string]any{"featured": true}, store.updates[len(store.updates)-1])

	_, err = svc.ToggleFeatured(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectServiceSeedOnlyWhenEmpty(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectService(store)
	seeds := []config.ProjectSeed{
		{Title: "ShipFast", TechStack: []string{"Next.js", "Stripe"}, Featured: true},
		{Title: "WriterAI", TechStack: []string{"Python"}},
	}

	n, err := svc.Seed(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ShipFast", list[0].Title)
	assert.Equal(t, 1, list[1].SortOrder)

	n, err = svc.Seed(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
