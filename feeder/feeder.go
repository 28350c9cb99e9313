// Package feeder reads RSS/Atom feeds for the post importer.
package feeder

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

type FeedItem struct {
	Title       string
	Link        string
	Summary     string
	Content     string
	ImageURL    string
	PublishedAt time.Time
}

// Fetcher parses feeds through the given http client. A nil client uses http.DefaultClient.
type Fetcher struct {
	client *http.Client
}

func New(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Fetch returns the feed items in feed order.
// If limit is greater than 0, it returns only the first limit items.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, limit int) ([]FeedItem, error) {
	fp := gofeed.NewParser()
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		var image string
		if item.Image != nil {
			image = item.Image.URL
		}

		items = append(items, FeedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Summary:     item.Description,
			Content:     item.Content,
			ImageURL:    image,
			PublishedAt: published,
		})

		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items, nil
}
