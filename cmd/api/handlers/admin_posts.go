package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/forms"
	"portfolio/internal/logger"
	"portfolio/models"
	"portfolio/query"
)

const adminPostsPath = "/admin"

type adminPostsPage struct {
	Page
	Form           *forms.PostForm
	Posts          query.State[[]models.BlogPost]
	Token          string
	FormError      string
	ExcerptEnabled bool
}

// AdminPosts serves the blog post editor and list.
type AdminPosts struct {
	Layout   *Layout
	Posts    *services.PostService
	Guard    *forms.SubmitGuard
	Excerpts *services.ExcerptService
}

func (h *AdminPosts) render(c *gin.Context, status int, form *forms.PostForm, flash *Flash) {
	data := adminPostsPage{
		Page:           h.Layout.page(c, "Admin"),
		Form:           form,
		Posts:          listAll(c.Request.Context(), h.Posts.ListAll),
		Token:          h.Guard.Issue(),
		ExcerptEnabled: h.Excerpts != nil && h.Excerpts.Enabled(),
	}
	if flash != nil {
		data.Flash = flash
		if flash.Kind == FlashError {
			data.FormError = flash.Title
		}
	}
	c.HTML(status, "admin_posts.html", data)
}

// listAll reads an admin list; there is no loading budget on admin screens.
func listAll[T any](ctx context.Context, fn func(context.Context) ([]T, error)) query.State[[]T] {
	items, err := fn(ctx)
	if err != nil {
		logger.ErrorWithFields("admin list failed", trace.Fields(ctx, logger.Fields{"error": err.Error()}))
		return query.Failed[[]T](err)
	}
	return query.Ready(items)
}

// Show handles GET /admin; ?edit=<id> loads a post into the form.
func (h *AdminPosts) Show(c *gin.Context) {
	form := forms.NewPostForm()
	id := c.Query("edit")
	if id == "" {
		h.render(c, http.StatusOK, form, nil)
		return
	}

	p, err := h.Posts.Get(c.Request.Context(), id)
	if err != nil {
		f := errorFlash("Error fetching posts", err.Error())
		if errors.Is(err, services.ErrPostNotFound) {
			f = errorFlash("Post not found", "It may have been deleted in the meantime.")
		}
		h.render(c, http.StatusOK, form, &f)
		return
	}
	form.Load(p)
	h.render(c, http.StatusOK, form, nil)
}

// Save handles POST /admin/posts, creating or updating depending on editing_id.
func (h *AdminPosts) Save(c *gin.Context) {
	var in forms.PostInput
	if err := c.ShouldBind(&in); err != nil {
		_ = c.Request.ParseForm()
		f := errorFlash("Invalid form", err.Error())
		h.render(c, http.StatusBadRequest, forms.PostFormFromInput(forms.PostInputFromValues(c.Request.PostForm)), &f)
		return
	}
	if !consumeSubmit(c, h.Layout, h.Guard, adminPostsPath) {
		return
	}

	form := forms.PostFormFromInput(in)
	ctx := c.Request.Context()

	var err error
	done, failed := "Post created!", "Error creating post"
	if form.IsEditing() {
		done, failed = "Post updated!", "Error updating post"
		err = h.Posts.Update(ctx, form.EditingID(), form.Draft)
	} else {
		_, err = h.Posts.Create(ctx, form.Draft, auth.SessionFrom(c).UserID)
	}
	if err != nil {
		status, f := writeFailure(err, failed)
		h.render(c, status, form, &f)
		return
	}

	h.Layout.SetFlash(c, successFlash(done, ""))
	c.Redirect(http.StatusSeeOther, adminPostsPath)
}

// TogglePublished handles POST /admin/posts/:id/toggle-published.
func (h *AdminPosts) TogglePublished(c *gin.Context) {
	if !consumeSubmit(c, h.Layout, h.Guard, adminPostsPath) {
		return
	}
	published, err := h.Posts.TogglePublished(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		h.Layout.SetFlash(c, errorFlash("Error updating post", err.Error()))
	case published:
		h.Layout.SetFlash(c, successFlash("Post published", ""))
	default:
		h.Layout.SetFlash(c, successFlash("Post unpublished", ""))
	}
	c.Redirect(http.StatusSeeOther, adminPostsPath)
}

// ConfirmDelete handles GET /admin/posts/:id/delete.
func (h *AdminPosts) ConfirmDelete(c *gin.Context) {
	p, err := h.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Layout.SetFlash(c, errorFlash("Error deleting post", err.Error()))
		c.Redirect(http.StatusSeeOther, adminPostsPath)
		return
	}
	c.HTML(http.StatusOK, "confirm_delete.html", confirmPage{
		Page:   h.Layout.page(c, "Delete post"),
		Kind:   "post",
		Name:   p.Title,
		Action: "/admin/posts/" + p.ID.Hex() + "/delete",
		Cancel: adminPostsPath,
		Token:  h.Guard.Issue(),
	})
}

// Delete handles POST /admin/posts/:id/delete.
func (h *AdminPosts) Delete(c *gin.Context) {
	if !consumeSubmit(c, h.Layout, h.Guard, adminPostsPath) {
		return
	}
	if err := h.Posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Layout.SetFlash(c, errorFlash("Error deleting post", err.Error()))
	} else {
		h.Layout.SetFlash(c, successFlash("Post deleted", ""))
	}
	c.Redirect(http.StatusSeeOther, adminPostsPath)
}
