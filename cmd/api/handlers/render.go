package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/trace"
	"portfolio/config"
	"portfolio/internal/logger"
)

// Layout carries what every server-rendered page needs: the site copy, the
// caller's session and a pending flash message.
type Layout struct {
	Site          config.SiteConfig
	SecureCookies bool

	// FetchBudget bounds how long the home page waits for a section before
	// rendering its skeleton instead.
	FetchBudget time.Duration

	now func() time.Time
}

const defaultFetchBudget = 3 * time.Second

// loadingRefreshSeconds is how soon a page with a section still loading reloads itself.
const loadingRefreshSeconds = 5

func NewLayout(site config.SiteConfig, secureCookies bool) *Layout {
	return &Layout{Site: site, SecureCookies: secureCookies, FetchBudget: defaultFetchBudget, now: time.Now}
}

// Page is the data shared by all templates.
type Page struct {
	Title   string
	Site    config.SiteConfig
	Session *auth.Session
	Flash   *Flash
	Year    int

	// Refresh, when positive, makes the browser reload the page after that many seconds.
	Refresh int
}

func (l *Layout) page(c *gin.Context, title string) Page {
	return Page{
		Title:   title,
		Site:    l.Site,
		Session: auth.SessionFrom(c),
		Flash:   l.takeFlash(c),
		Year:    l.now().Year(),
	}
}

type notFoundPage struct {
	Page
	Heading string
	Message string
	Back    config.Link
}

type errorPage struct {
	Page
	Message string
}

// PostNotFound renders the 404 shared by missing and unpublished posts.
func (l *Layout) PostNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", notFoundPage{
		Page:    l.page(c, "Post Not Found"),
		Heading: "Post Not Found",
		Message: "The post you're looking for doesn't exist or has been removed.",
		Back:    config.Link{Label: "Back to blog", Href: "/#blog"},
	})
}

// NotFound is the catch-all 404 page.
func (l *Layout) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", notFoundPage{
		Page:    l.page(c, "Page Not Found"),
		Heading: "Page Not Found",
		Message: "There is nothing at this address.",
		Back:    config.Link{Label: "Go home", Href: "/"},
	})
}

// AccessDenied is shown to signed-in visitors without the admin role.
func (l *Layout) AccessDenied(c *gin.Context) {
	c.HTML(http.StatusForbidden, "access_denied.html", l.page(c, "Access Denied"))
}

// Failure logs err and renders the 503 error page.
func (l *Layout) Failure(c *gin.Context, msg string, err error) {
	logger.ErrorWithFields(msg, trace.Fields(c.Request.Context(), logger.Fields{
		"error": err.Error(),
		"path":  c.Request.URL.Path,
	}))
	c.HTML(http.StatusServiceUnavailable, "error.html", errorPage{Page: l.page(c, "Something went wrong")})
}
