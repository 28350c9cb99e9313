package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio/cmd/api/handlers"
	"portfolio/cmd/api/middleware"
	"portfolio/cmd/api/services"
	"portfolio/cmd/api/views"
	_ "portfolio/docs"
	"portfolio/forms"
)

// Deps are the services the routes are wired to.
type Deps struct {
	Layout     *handlers.Layout
	BaseURL    string
	Posts      *services.PostService
	Projects   *services.ProjectService
	Auth       *services.AuthService
	Newsletter *services.NewsletterService
	Previews   *services.PreviewService
	Excerpts   *services.ExcerptService
	Guard      *forms.SubmitGuard

	// Health reports whether the database is reachable.
	Health func(ctx context.Context) error
}

func New(d Deps) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.Session(d.Auth))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", views.Static())
	r.NoRoute(d.Layout.NotFound)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := d.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public pages
	r.GET("/", handlers.HomeHandler(d.Layout, d.Posts, d.Projects))
	r.GET("/blog/:slug", handlers.BlogPostHandler(d.Layout, d.Posts))
	r.GET("/rss.xml", handlers.RSSHandler(d.Layout, d.Posts, d.BaseURL))
	r.POST("/newsletter", handlers.NewsletterHandler(d.Layout, d.Newsletter))

	authGroup := r.Group("/auth")
	{
		authGroup.GET("", handlers.AuthPageHandler(d.Layout, d.Auth))
		authGroup.POST("", handlers.SignInHandler(d.Layout, d.Auth))
		authGroup.POST("/signout", handlers.SignOutHandler(d.Layout))
		authGroup.GET("/google/login", handlers.GoogleLoginHandler(d.Layout, d.Auth))
		authGroup.GET("/google/callback", handlers.GoogleCallbackHandler(d.Layout, d.Auth))
	}

	// admin screens
	posts := &handlers.AdminPosts{Layout: d.Layout, Posts: d.Posts, Guard: d.Guard, Excerpts: d.Excerpts}
	projects := &handlers.AdminProjects{Layout: d.Layout, Projects: d.Projects, Guard: d.Guard}
	admin := r.Group("/admin", middleware.RequireAdminPage(d.Layout.AccessDenied))
	{
		admin.GET("", posts.Show)
		admin.POST("/posts", posts.Save)
		admin.POST("/posts/:id/toggle-published", posts.TogglePublished)
		admin.GET("/posts/:id/delete", posts.ConfirmDelete)
		admin.POST("/posts/:id/delete", posts.Delete)

		admin.GET("/projects", projects.Show)
		admin.POST("/projects", projects.Save)
		admin.POST("/projects/:id/toggle-featured", projects.ToggleFeatured)
		admin.GET("/projects/:id/delete", projects.ConfirmDelete)
		admin.POST("/projects/:id/delete", projects.Delete)
	}

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.GET("/posts/:slug", handlers.GetPostHandler(d.Posts))
		api.GET("/projects", handlers.ListProjectsHandler(d.Projects))
		api.GET("/auth/me", handlers.MeHandler(d.Auth))

		adminAPI := api.Group("/admin", middleware.AdminAuthMiddleware(d.Auth))
		{
			adminAPI.GET("/posts", handlers.AdminListPostsHandler(d.Posts))
			adminAPI.POST("/posts", handlers.AdminCreatePostHandler(d.Posts))
			adminAPI.PUT("/posts/:id", handlers.AdminUpdatePostHandler(d.Posts))
			adminAPI.DELETE("/posts/:id", handlers.AdminDeletePostHandler(d.Posts))
			adminAPI.POST("/posts/:id/toggle-published", handlers.AdminTogglePublishedHandler(d.Posts))

			adminAPI.GET("/projects", handlers.ListProjectsHandler(d.Projects))
			adminAPI.POST("/projects", handlers.AdminCreateProjectHandler(d.Projects))
			adminAPI.PUT("/projects/:id", handlers.AdminUpdateProjectHandler(d.Projects))
			adminAPI.DELETE("/projects/:id", handlers.AdminDeleteProjectHandler(d.Projects))
			adminAPI.POST("/projects/:id/toggle-featured", handlers.AdminToggleFeaturedHandler(d.Projects))

			adminAPI.POST("/previews", handlers.AdminPreviewHandler(d.Previews))
			adminAPI.POST("/excerpts", handlers.AdminExcerptHandler(d.Excerpts))
		}
	}

	return r, nil
}
