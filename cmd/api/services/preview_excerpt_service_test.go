package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/cmd/api/httpclient"
	"portfolio/cmd/api/quota"
	"portfolio/forms"
)

func TestPreviewServiceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>DevTools Pro</title>
<meta property="og:description" content="Developer productivity suite">
<meta property="og:image" content="/og.png"></head><body></body></html>`))
	}))
	defer srv.Close()

	svc := NewPreviewService(httpclient.NewDefault())

	p, err := svc.Fetch(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "Developer productivity suite", p.Description)
	assert.Equal(t, srv.URL+"/og.png", p.ImageURL)

	_, err = svc.Fetch(context.Background(), srv.URL+"/missing")
	assert.Error(t, err)

	for _, bad := range []string{"", "ftp://example.com", "/relative", "javascript:alert(1)"} {
		_, err = svc.Fetch(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidURL, bad)
	}
}

type stubGenerator struct {
	out   string
	calls int
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	g.calls++
	return g.out, nil
}

func TestExcerptService(t *testing.T) {
	disabled := NewExcerptService(nil, nil)
	assert.False(t, disabled.Enabled())
	_, err := disabled.Suggest(context.Background(), "text")
	assert.ErrorIs(t, err, ErrExcerptDisabled)

	gen := &stubGenerator{out: `{"excerpt":"A short teaser.","is_failure":false}`}
	svc := NewExcerptService(gen, quota.NewExcerptQuotaLimiter(0, 1))

	var verr *forms.ValidationError
	_, err = svc.Suggest(context.Background(), "  <p></p> ")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, gen.calls)

	got, err := svc.Suggest(context.Background(), "Long post body")
	require.NoError(t, err)
	assert.Equal(t, "A short teaser.", got)

	_, err = svc.Suggest(context.Background(), "Another post")
	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, 1, gen.calls)
}
