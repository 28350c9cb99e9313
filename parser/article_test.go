package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/parser"
)

var articlePage = `<!doctype html>
<html><head>
<title>Shipping in a weekend</title>
<meta property="og:image" content="/img/cover.png">
</head>
<body>
<nav><a href="/">Home</a> <a href="/blog">Blog</a></nav>
<article>
<h1>Shipping in a weekend</h1>
<p>` + strings.Repeat("Most side projects die because they never ship. ", 12) + `</p>
<p>` + strings.Repeat("Pick a boring stack, cut scope twice and launch on Sunday night. ", 10) + `</p>
</article>
<footer>© 2025</footer>
</body></html>`

func TestExtractArticle(t *testing.T) {
	a, err := parser.ExtractArticle(articlePage, "https://example.com/blog/weekend")
	require.NoError(t, err)

	assert.Contains(t, a.Text, "Most side projects die")
	assert.Contains(t, a.Text, "launch on Sunday night")
	assert.Equal(t, "https://example.com/img/cover.png", a.TopImage)
}

func TestExtractArticleEmptyPage(t *testing.T) {
	_, err := parser.ExtractArticle(`<html><body></body></html>`, "")
	assert.ErrorIs(t, err, parser.ErrNoArticle)
}
