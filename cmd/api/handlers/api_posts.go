package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
	"portfolio/forms"
)

const maxPostListLimit = 50

// apiError maps service errors to JSON error responses.
func apiError(c *gin.Context, err error) {
	var ve *forms.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponseDTO{Error: ve.Message})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponseDTO{Error: "slug_taken"})
	case errors.Is(err, services.ErrPostNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "post_not_found"})
	case errors.Is(err, services.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "project_not_found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
	}
}

// ListPostsHandler godoc
// @Summary      List published posts
// @Description  Published posts, newest first.
// @Tags         posts
// @Param        limit  query  int  false  "Max posts (1-50)"  default(4)
// @Produce      json
// @Success      200  {array}   dto.PostDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.HomePostLimit)))
		if err != nil || limit <= 0 {
			limit = services.HomePostLimit
		}
		if limit > maxPostListLimit {
			limit = maxPostListLimit
		}

		posts, err := svc.ListPublished(c.Request.Context(), limit)
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTOs(posts))
	}
}

// GetPostHandler godoc
// @Summary      Get published post by slug
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPublished(c.Request.Context(), c.Param("slug"))
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(*post))
	}
}

// @Summary List all posts for admin
// @Description Drafts included, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} dto.PostDTO
// @Failure 401 {object} dto.ErrorResponseDTO
// @Failure 403 {object} dto.ErrorResponseDTO
// @Router /admin/posts [get]
func AdminListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.ListAll(c.Request.Context())
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTOs(posts))
	}
}

func postDraft(in dto.PostInputDTO) forms.PostDraft {
	return forms.PostDraft{
		Title:      in.Title,
		Slug:       in.Slug,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Published:  in.Published,
	}
}

// @Summary Create a post
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.PostInputDTO true "Post"
// @Success 201 {object} dto.CreatedDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /admin/posts [post]
func AdminCreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostInputDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		id, err := svc.Create(c.Request.Context(), postDraft(req), auth.SessionFrom(c).UserID)
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.CreatedDTO{ID: id})
	}
}

// @Summary Update a post
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body dto.PostInputDTO true "Post"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /admin/posts/{id} [put]
func AdminUpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PostInputDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), postDraft(req)); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post updated successfully"})
	}
}

// @Summary Delete a post
// @Description Delete a post by ID
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /admin/posts/{id} [delete]
func AdminDeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post deleted successfully"})
	}
}

// @Summary Toggle published
// @Description Flips only the published flag
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PublishedStateDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /admin/posts/{id}/toggle-published [post]
func AdminTogglePublishedHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		published, err := svc.TogglePublished(c.Request.Context(), id)
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.PublishedStateDTO{ID: id, Published: published})
	}
}
