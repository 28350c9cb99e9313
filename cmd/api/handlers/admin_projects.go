package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/services"
	"portfolio/forms"
	"portfolio/models"
	"portfolio/query"
)

const adminProjectsPath = "/admin/projects"

type adminProjectsPage struct {
	Page
	Draft     forms.ProjectDraft
	EditingID string
	Projects  query.State[[]models.Project]
	Token     string
	FormError string
}

// AdminProjects serves the project editor and list.
type AdminProjects struct {
	Layout   *Layout
	Projects *services.ProjectService
	Guard    *forms.SubmitGuard
}

func (h *AdminProjects) render(c *gin.Context, status int, draft forms.ProjectDraft, editingID string, flash *Flash) {
	data := adminProjectsPage{
		Page:      h.Layout.page(c, "Admin"),
		Draft:     draft,
		EditingID: editingID,
		Projects:  listAll(c.Request.Context(), h.Projects.List),
		Token:     h.Guard.Issue(),
	}
	if flash != nil {
		data.Flash = flash
		if flash.Kind == FlashError {
			data.FormError = flash.Title
		}
	}
	c.HTML(status, "admin_projects.html", data)
}

// Show handles GET /admin/projects; ?edit=<id> loads a project into the form.
func (h *AdminProjects) Show(c *gin.Context) {
	id := c.Query("edit")
	if id == "" {
		h.render(c, http.StatusOK, forms.NewProjectDraft(), "", nil)
		return
	}

	p, err := h.Projects.Get(c.Request.Context(), id)
	if err != nil {
		f := errorFlash("Error fetching projects", err.Error())
		if errors.Is(err, services.ErrProjectNotFound) {
			f = errorFlash("Project not found", "It may have been deleted in the meantime.")
		}
		h.render(c, http.StatusOK, forms.NewProjectDraft(), "", &f)
		return
	}
	h.render(c, http.StatusOK, forms.LoadProject(p), p.ID.Hex(), nil)
}

// Save handles POST /admin/projects, creating or updating depending on editing_id.
func (h *AdminProjects) Save(c *gin.Context) {
	var in forms.ProjectInput
	if err := c.ShouldBind(&in); err != nil {
		_ = c.Request.ParseForm()
		kept := forms.ProjectInputFromValues(c.Request.PostForm)
		f := errorFlash("Invalid form", err.Error())
		h.render(c, http.StatusBadRequest, kept.ProjectDraft, kept.EditingID, &f)
		return
	}
	if !consumeSubmit(c, h.Layout, h.Guard, adminProjectsPath) {
		return
	}

	ctx := c.Request.Context()
	editingID := strings.TrimSpace(in.EditingID)

	var err error
	done, failed := "Project created!", "Error creating project"
	if editingID != "" {
		done, failed = "Project updated!", "Error updating project"
		err = h.Projects.Update(ctx, editingID, in.ProjectDraft)
	} else {
		_, err = h.Projects.Create(ctx, in.ProjectDraft)
	}
	if err != nil {
		status, f := writeFailure(err, failed)
		h.render(c, status, in.ProjectDraft, editingID, &f)
		return
	}

	h.Layout.SetFlash(c, successFlash(done, ""))
	c.Redirect(http.StatusSeeOther, adminProjectsPath)
}

// ToggleFeatured handles POST /admin/projects/:id/toggle-featured.
func (h *AdminProjects) ToggleFeatured(c *gin.Context) {
	if !consumeSubmit(c, h.Layout, h.Guard, adminProjectsPath) {
		return
	}
	featured, err := h.Projects.ToggleFeatured(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		h.Layout.SetFlash(c, errorFlash("Error updating project", err.Error()))
	case featured:
		h.Layout.SetFlash(c, successFlash("Project featured", ""))
	default:
		h.Layout.SetFlash(c, successFlash("Project no longer featured", ""))
	}
	c.Redirect(http.StatusSeeOther, adminProjectsPath)
}

// ConfirmDelete handles GET /admin/projects/:id/delete.
func (h *AdminProjects) ConfirmDelete(c *gin.Context) {
	p, err := h.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Layout.SetFlash(c, errorFlash("Error deleting project", err.Error()))
		c.Redirect(http.StatusSeeOther, adminProjectsPath)
		return
	}
	c.HTML(http.StatusOK, "confirm_delete.html", confirmPage{
		Page:   h.Layout.page(c, "Delete project"),
		Kind:   "project",
		Name:   p.Title,
		Action: "/admin/projects/" + p.ID.Hex() + "/delete",
		Cancel: adminProjectsPath,
		Token:  h.Guard.Issue(),
	})
}

// Delete handles POST /admin/projects/:id/delete.
func (h *AdminProjects) Delete(c *gin.Context) {
	if !consumeSubmit(c, h.Layout, h.Guard, adminProjectsPath) {
		return
	}
	if err := h.Projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Layout.SetFlash(c, errorFlash("Error deleting project", err.Error()))
	} else {
		h.Layout.SetFlash(c, successFlash("Project deleted", ""))
	}
	c.Redirect(http.StatusSeeOther, adminProjectsPath)
}
