package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/services"
	"portfolio/cmd/api/views"
)

const feedPostLimit = 20

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// RSSHandler serves an RSS 2.0 feed of the latest published posts.
func RSSHandler(l *Layout, posts *services.PostService, baseURL string) gin.HandlerFunc {
	baseURL = strings.TrimRight(baseURL, "/")
	return func(c *gin.Context) {
		list, err := posts.ListPublished(c.Request.Context(), feedPostLimit)
		if err != nil {
			l.Failure(c, "rss feed load failed", err)
			return
		}

		ch := rssChannel{
			Title:       l.Site.Brand,
			Link:        baseURL + "/",
			Description: l.Site.Tagline,
			Language:    "en",
			Items:       make([]rssItem, 0, len(list)),
		}
		if len(list) > 0 {
			ch.LastBuildDate = list[0].UpdatedAt.UTC().Format(time.RFC1123Z)
		}
		for _, p := range list {
			link := baseURL + "/blog/" + p.Slug
			ch.Items = append(ch.Items, rssItem{
				Title:       p.Title,
				Link:        link,
				GUID:        rssGUID{Value: link, IsPermaLink: true},
				Description: views.PostExcerpt(p),
				PubDate:     p.CreatedAt.UTC().Format(time.RFC1123Z),
			})
		}

		out, err := xml.MarshalIndent(rssFeed{Version: "2.0", Channel: ch}, "", "  ")
		if err != nil {
			l.Failure(c, "rss feed encode failed", err)
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", append([]byte(xml.Header), out...))
	}
}
