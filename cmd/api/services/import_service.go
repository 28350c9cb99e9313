package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"unicode/utf8"

	"portfolio/cmd/api/trace"
	"portfolio/content"
	"portfolio/feeder"
	"portfolio/forms"
	"portfolio/internal/logger"
	"portfolio/parser"
)

const (
	// 피드 본문이 이보다 짧으면 원문 페이지에서 본문을 다시 추출한다.
	minImportedRunes   = 280
	importExcerptRunes = 200
)

// FeedSource reads feed items. *feeder.Fetcher satisfies it.
type FeedSource interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]feeder.FeedItem, error)
}

// PageLoader returns the HTML behind an article link.
type PageLoader func(ctx context.Context, url string) (string, error)

// HTTPPageLoader loads pages with a plain GET.
func HTTPPageLoader(client *http.Client) PageLoader {
	return func(ctx context.Context, url string) (string, error) {
		body, _, err := fetchHTML(ctx, client, url)
		return body, err
	}
}

type ImportOptions struct {
	FeedURL  string
	Limit    int
	AuthorID string
	Publish  bool

	// FetchArticles loads the linked page when the feed only carries a summary.
	FetchArticles bool
}

type SkippedItem struct {
	Title  string
	Reason string
}

type ImportResult struct {
	Created []string
	Skipped []SkippedItem
}

// ImportService turns feed items from another blog into posts.
type ImportService struct {
	posts *PostService
	feeds FeedSource
	load  PageLoader
}

// NewImportService builds the importer. load may be nil, which disables article fetching.
func NewImportService(posts *PostService, feeds FeedSource, load PageLoader) *ImportService {
	return &ImportService{posts: posts, feeds: feeds, load: load}
}

// Import creates one post per feed item. Items whose slug already exists are
// skipped, so running an import twice is harmless. Posts stay drafts unless
// opts.Publish is set.
func (s *ImportService) Import(ctx context.Context, opts ImportOptions) (ImportResult, error) {
	var res ImportResult

	items, err := s.feeds.Fetch(ctx, opts.FeedURL, opts.Limit)
	if err != nil {
		return res, fmt.Errorf("fetch feed: %w", err)
	}

	for _, item := range items {
		draft, reason := s.draftFrom(ctx, item, opts)
		if reason != "" {
			res.Skipped = append(res.Skipped, SkippedItem{Title: item.Title, Reason: reason})
			continue
		}

		_, err := s.posts.Create(ctx, draft, opts.AuthorID)
		var ve *forms.ValidationError
		switch {
		case errors.Is(err, ErrSlugTaken):
			res.Skipped = append(res.Skipped, SkippedItem{Title: item.Title, Reason: "slug exists"})
			continue
		case errors.As(err, &ve):
			res.Skipped = append(res.Skipped, SkippedItem{Title: item.Title, Reason: ve.Message})
			continue
		case err != nil:
			return res, err
		}

		res.Created = append(res.Created, draft.Slug)
		logger.InfoWithFields("post imported", trace.Fields(ctx, logger.Fields{
			"slug":      draft.Slug,
			"source":    item.Link,
			"published": draft.Published,
		}))
	}
	return res, nil
}

// draftFrom builds the post for one item, or returns why the item is skipped.
func (s *ImportService) draftFrom(ctx context.Context, item feeder.FeedItem, opts ImportOptions) (forms.PostDraft, string) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return forms.PostDraft{}, "missing title"
	}
	slug := content.Slugify(title)
	if slug == "" {
		return forms.PostDraft{}, "title has no slug characters"
	}

	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Summary
	}
	cover := item.ImageURL

	if opts.FetchArticles && s.load != nil && item.Link != "" &&
		utf8.RuneCountInString(content.PlainText(body)) < minImportedRunes {
		if article, err := s.extract(ctx, item.Link); err != nil {
			logger.WarnWithFields("article extraction failed, keeping feed text", trace.Fields(ctx, logger.Fields{
				"source": item.Link,
				"error":  err.Error(),
			}))
		} else {
			body = article.Text
			if cover == "" {
				cover = article.TopImage
			}
		}
	}

	if content.PlainText(body) == "" {
		return forms.PostDraft{}, "empty content"
	}

	excerptSource := item.Summary
	if content.PlainText(excerptSource) == "" {
		excerptSource = body
	}

	if item.Link != "" {
		link := html.EscapeString(item.Link)
		body = strings.TrimRight(body, "\n") + "\n\n" +
			`<p>Originally published at <a href="` + link + `">` + link + `</a></p>`
	}

	return forms.PostDraft{
		Title:      title,
		Slug:       slug,
		Excerpt:    content.Excerpt(excerptSource, importExcerptRunes),
		Content:    body,
		CoverImage: cover,
		Published:  opts.Publish,
	}, ""
}

func (s *ImportService) extract(ctx context.Context, link string) (*parser.Article, error) {
	page, err := s.load(ctx, link)
	if err != nil {
		return nil, err
	}
	return parser.ExtractArticle(page, link)
}
