package parser

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Preview 는 프로젝트 라이브 URL 에서 뽑아낸 링크 미리보기 정보이다.
type Preview struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SiteName    string `json:"site_name"`
}

// ParsePreview 는 HTML 문서에서 제목, 설명, 대표 이미지를 추출한다.
// 우선순위: readability → Open Graph/Twitter 메타 → <title>/<link>.
func ParsePreview(htmlStr string, pageURL string) (Preview, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return Preview{}, err
	}

	var baseURL *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			baseURL = u
		}
	}

	p := Preview{URL: pageURL}

	if article, err := readability.FromDocument(doc, baseURL); err == nil {
		p.Title = strings.TrimSpace(article.Title)
		p.Description = strings.TrimSpace(article.Excerpt)
		p.SiteName = strings.TrimSpace(article.SiteName)
		if article.Image != "" {
			p.ImageURL = resolveImageURL(article.Image, baseURL)
		}
	}

	if p.Title == "" {
		p.Title = firstNonEmpty(
			findMetaContent(doc, "property", []string{"og:title"}),
			findMetaContent(doc, "name", []string{"twitter:title"}),
			findTitle(doc),
		)
	}
	if p.Description == "" {
		p.Description = firstNonEmpty(
			findMetaContent(doc, "property", []string{"og:description"}),
			findMetaContent(doc, "name", []string{"description", "twitter:description"}),
		)
	}
	if p.SiteName == "" {
		p.SiteName = findMetaContent(doc, "property", []string{"og:site_name"})
	}
	if p.ImageURL == "" {
		p.ImageURL = findTopImage(doc, baseURL)
	}

	return p, nil
}

func findTitle(root *html.Node) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			result = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
