package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/internal/logger"
	"portfolio/models"
	"portfolio/query"
)

type homePage struct {
	Page
	Projects query.State[[]models.Project]
	Posts    query.State[[]models.BlogPost]
}

type blogPostPage struct {
	Page
	Post *models.BlogPost
}

// HomeHandler renders the landing page. Projects and posts are fetched in
// parallel and each section renders its own loading, empty or failed state.
func HomeHandler(l *Layout, posts *services.PostService, projects *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		data := homePage{Page: l.page(c, "")}

		var g errgroup.Group
		g.Go(func() error {
			data.Projects = query.Fetch(ctx, l.FetchBudget, projects.List)
			return nil
		})
		g.Go(func() error {
			data.Posts = query.Fetch(ctx, l.FetchBudget, func(ctx context.Context) ([]models.BlogPost, error) {
				return posts.ListPublished(ctx, services.HomePostLimit)
			})
			return nil
		})
		_ = g.Wait()

		logSectionError(ctx, "projects", data.Projects.Err())
		logSectionError(ctx, "posts", data.Posts.Err())

		if data.Projects.IsLoading() || data.Posts.IsLoading() {
			data.Refresh = loadingRefreshSeconds
			logger.WarnWithFields("home section exceeded fetch budget", trace.Fields(ctx, logger.Fields{
				"budget":           l.FetchBudget.String(),
				"projects_loading": data.Projects.IsLoading(),
				"posts_loading":    data.Posts.IsLoading(),
			}))
		}

		c.HTML(http.StatusOK, "home.html", data)
	}
}

func logSectionError(ctx context.Context, section string, err error) {
	if err == nil {
		return
	}
	logger.ErrorWithFields("home section failed to load", trace.Fields(ctx, logger.Fields{
		"section": section,
		"error":   err.Error(),
	}))
}

// BlogPostHandler renders one published post by slug.
func BlogPostHandler(l *Layout, posts *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := posts.GetPublished(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				l.PostNotFound(c)
				return
			}
			l.Failure(c, "blog post load failed", err)
			return
		}
		c.HTML(http.StatusOK, "blog_post.html", blogPostPage{Page: l.page(c, post.Title), Post: post})
	}
}
