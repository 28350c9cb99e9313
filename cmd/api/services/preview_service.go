package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"portfolio/parser"
)

var ErrInvalidURL = errors.New("url must be an absolute http(s) address")

const maxPreviewBytes = 2 << 20

// PreviewService fetches a project's live URL and extracts link preview metadata
// so the admin can prefill description and image.
type PreviewService struct {
	client *http.Client
}

func NewPreviewService(client *http.Client) *PreviewService {
	return &PreviewService{client: client}
}

func (s *PreviewService) Fetch(ctx context.Context, rawURL string) (parser.Preview, error) {
	body, finalURL, err := fetchHTML(ctx, s.client, rawURL)
	if err != nil {
		return parser.Preview{}, err
	}
	return parser.ParsePreview(body, finalURL)
}

// fetchHTML GETs an absolute http(s) URL and returns at most maxPreviewBytes of
// the body along with the URL after redirects.
func fetchHTML(ctx context.Context, client *http.Client, rawURL string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: unexpected status %d", u.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewBytes))
	if err != nil {
		return "", "", err
	}
	return string(body), resp.Request.URL.String(), nil
}
