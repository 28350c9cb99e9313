// Package content holds the text helpers shared by the admin forms and the public views.
package content

import (
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Slugify lowercases title and collapses every run of characters outside
// [a-z0-9] into a single hyphen, trimming hyphens from both ends.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// ParseTechStack splits a comma separated list, trimming entries and dropping empty ones.
func ParseTechStack(input string) []string {
	out := []string{}
	for _, part := range strings.Split(input, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func FormatTechStack(stack []string) string {
	return strings.Join(stack, ", ")
}

var policy = bluemonday.UGCPolicy()

// RenderContent sanitizes stored post content and turns line breaks into <br />.
func RenderContent(raw string) template.HTML {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	clean := policy.Sanitize(raw)
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br />"))
}

// PlainText strips all markup, for feeds and meta descriptions.
func PlainText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(raw)))
}

// Excerpt returns at most n runes of the plain text of content, cutting on a word
// boundary when one is close and appending an ellipsis when anything was cut.
func Excerpt(raw string, n int) string {
	text := strings.Join(strings.Fields(PlainText(raw)), " ")
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)[:n]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
