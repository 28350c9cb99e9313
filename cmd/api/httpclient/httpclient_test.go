package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/cmd/api/trace"
)

func TestRoundTripperPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(Config{UserAgent: "portfolio-preview/1.0"})
	ctx := trace.WithRequestAndSpan(context.Background(), "req-123", 0)

	for want := 1; want <= 2; want++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "req-123", gotRequestID)
		assert.Equal(t, trace.CurrentSpanID(ctx), gotSpanID)
	}
	assert.Equal(t, "2", gotSpanID)
	assert.Equal(t, "portfolio-preview/1.0", gotUA)
}

func TestRoundTripperOutsideRequestGeneratesID(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
	}))
	defer srv.Close()

	resp, err := NewDefault().Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, gotRequestID)
}
