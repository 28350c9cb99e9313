package parser

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// findTopImage 는 메타 → link → 충분히 큰 <img> 순서로 대표 이미지를 찾는다.
func findTopImage(doc *html.Node, baseURL *url.URL) string {
	if imgURL := findTopImageFromMeta(doc); imgURL != "" {
		return resolveImageURL(imgURL, baseURL)
	}
	if imgURL := findTopImageFromLink(doc); imgURL != "" {
		return resolveImageURL(imgURL, baseURL)
	}
	return findTopImageFromImg(doc, baseURL, 300, 300)
}

func findTopImageFromMeta(doc *html.Node) string {
	// 우선순위: Open Graph 이미지 → Twitter 카드 이미지 → 기타 이미지 관련 메타
	if url := findMetaContent(doc, "property", []string{
		"og:image",
		"og:image:url",
		"og:image:secure_url",
	}); url != "" {
		return url
	}

	if url := findMetaContent(doc, "name", []string{
		"twitter:image",
		"twitter:image:src",
		"thumbnail",
		"image",
	}); url != "" {
		return url
	}

	return findMetaContent(doc, "itemprop", []string{"image"})
}

func findMetaContent(root *html.Node, key string, candidates []string) string {
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[strings.ToLower(c)] = struct{}{}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue string
			var content string
			for _, a := range n.Attr {
				keyLower := strings.ToLower(a.Key)
				if keyLower == strings.ToLower(key) {
					attrValue = strings.ToLower(a.Val)
				} else if keyLower == "content" {
					content = a.Val
				}
			}

			if content != "" && attrValue != "" {
				if _, ok := candidateSet[attrValue]; ok {
					result = strings.TrimSpace(content)
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func findTopImageFromLink(doc *html.Node) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, href string
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "rel":
					rel = strings.ToLower(a.Val)
				case "href":
					href = a.Val
				}
			}

			if href != "" && (rel == "image_src" || strings.Contains(rel, "thumbnail") || rel == "apple-touch-icon") {
				result = href
				return
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return result
}

// findTopImageFromImg 는 width/height 속성이 최소 크기 이상인 첫 번째 <img> 를 고른다.
// 미리보기는 관리자 요청 경로에서 동기로 실행되므로 이미지를 내려받아 크기를 재지 않는다.
func findTopImageFromImg(doc *html.Node, baseURL *url.URL, minWidth, minHeight int) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "img" {
			var src string
			var width, height int
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "src":
					src = a.Val
				case "width":
					width, _ = strconv.Atoi(a.Val)
				case "height":
					height, _ = strconv.Atoi(a.Val)
				}
			}
			if src != "" && width >= minWidth && height >= minHeight {
				if abs, ok := makeAbsoluteImageURL(src, baseURL); ok {
					result = abs
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return result
}

func makeAbsoluteImageURL(src string, baseURL *url.URL) (string, bool) {
	if src == "" {
		return "", false
	}

	parsed, err := url.Parse(src)
	if err != nil {
		return "", false
	}

	if parsed.IsAbs() {
		return parsed.String(), true
	}

	if baseURL == nil {
		return "", false
	}

	return baseURL.ResolveReference(parsed).String(), true
}

func resolveImageURL(src string, baseURL *url.URL) string {
	if src == "" {
		return ""
	}
	if abs, ok := makeAbsoluteImageURL(src, baseURL); ok {
		return abs
	}
	return src
}
