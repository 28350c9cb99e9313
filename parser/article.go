package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ErrNoArticle 는 어떤 추출기도 본문을 찾지 못했을 때 반환된다.
var ErrNoArticle = errors.New("no article text found")

// Article 은 외부 글에서 추출한 본문 텍스트와 대표 이미지이다.
type Article struct {
	Text     string
	TopImage string
}

type extractor struct {
	name string
	fn   func(htmlStr string, pageURL *url.URL) (*Article, error)
}

// 순서대로 시도하며 본문이 비어 있지 않은 첫 결과를 사용한다.
var extractors = []extractor{
	{"readability", extractWithReadability},
	{"trafilatura", extractWithTrafilatura},
	{"goose", extractWithGoose},
}

// ExtractArticle 은 readability → trafilatura → goose 순으로 본문 추출을 시도한다.
// 상대 경로 이미지는 pageURL 기준으로 절대 경로가 된다.
func ExtractArticle(htmlStr string, pageURL string) (*Article, error) {
	var base *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			base = u
		}
	}

	var errs []error
	for _, ex := range extractors {
		a, err := ex.fn(htmlStr, base)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ex.name, err))
			continue
		}
		a.Text = strings.TrimSpace(a.Text)
		if a.Text == "" {
			continue
		}
		if a.TopImage != "" {
			a.TopImage = resolveImageURL(a.TopImage, base)
		}
		return a, nil
	}
	return nil, errors.Join(append([]error{ErrNoArticle}, errs...)...)
}

func extractWithReadability(htmlStr string, pageURL *url.URL) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, pageURL)
	if err != nil {
		return nil, err
	}
	return &Article{
		Text:     article.TextContent,
		TopImage: article.Image,
	}, nil
}

func extractWithTrafilatura(htmlStr string, pageURL *url.URL) (*Article, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
		OriginalURL:   pageURL,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}
	return &Article{
		Text:     article.ContentText,
		TopImage: article.Metadata.Image,
	}, nil
}

func extractWithGoose(htmlStr string, pageURL *url.URL) (*Article, error) {
	raw := ""
	if pageURL != nil {
		raw = pageURL.String()
	}

	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, raw)
	if err != nil {
		return nil, err
	}
	return &Article{
		Text:     article.CleanedText,
		TopImage: article.TopImage,
	}, nil
}
