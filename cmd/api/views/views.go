// Package views embeds the HTML templates and static assets of the site.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"portfolio/content"
	"portfolio/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const excerptFallbackRunes = 160

// Funcs is the FuncMap every page template is parsed with.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"renderContent": content.RenderContent,
		"techStack":     content.FormatTechStack,
		"date":          formatDate,
		"isoDate":       func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		"deref":         deref,
		"postExcerpt":   PostExcerpt,
		"skeletons":     func() []int { return []int{0, 1, 2} },
	}
}

// Templates parses all embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// PostExcerpt is the post's excerpt, or the start of its content in plain text.
func PostExcerpt(p models.BlogPost) string {
	if p.Excerpt != nil && *p.Excerpt != "" {
		return *p.Excerpt
	}
	return content.Excerpt(p.Content, excerptFallbackRunes)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
