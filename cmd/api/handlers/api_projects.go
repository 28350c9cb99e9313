package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
	"portfolio/forms"
)

// ListProjectsHandler godoc
// @Summary      List projects
// @Description  All projects by sort order.
// @Tags         projects
// @Produce      json
// @Success      200  {array}   dto.ProjectDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := svc.List(c.Request.Context())
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewProjectDTOs(projects))
	}
}

func projectDraft(in dto.ProjectInputDTO) forms.ProjectDraft {
	return forms.ProjectDraft{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		TechStack:   in.TechStack,
		LiveURL:     in.LiveURL,
		RepoURL:     in.RepoURL,
		Featured:    in.Featured,
		Revenue:     in.Revenue,
		UsersCount:  in.UsersCount,
		SortOrder:   in.SortOrder,
	}
}

// @Summary Create a project
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.ProjectInputDTO true "Project"
// @Success 201 {object} dto.CreatedDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /admin/projects [post]
func AdminCreateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProjectInputDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		id, err := svc.Create(c.Request.Context(), projectDraft(req))
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.CreatedDTO{ID: id})
	}
}

// @Summary Update a project
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body dto.ProjectInputDTO true "Project"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Router /admin/projects/{id} [put]
func AdminUpdateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProjectInputDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), projectDraft(req)); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project updated successfully"})
	}
}

// @Summary Delete a project
// @Tags admin
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /admin/projects/{id} [delete]
func AdminDeleteProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project deleted successfully"})
	}
}

// @Summary Toggle featured
// @Description Flips only the featured flag
// @Tags admin
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.FeaturedStateDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /admin/projects/{id}/toggle-featured [post]
func AdminToggleFeaturedHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		featured, err := svc.ToggleFeatured(c.Request.Context(), id)
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FeaturedStateDTO{ID: id, Featured: featured})
	}
}
