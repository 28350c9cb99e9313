package forms

import (
	"net/url"
	"strconv"
	"strings"

	"portfolio/content"
	"portfolio/models"
)

// ProjectDraft mirrors a Project as typed into the editor; tech stack and sort
// order stay raw text until conversion.
type ProjectDraft struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	ImageURL    string `form:"image_url" json:"image_url"`
	TechStack   string `form:"tech_stack" json:"tech_stack"`
	LiveURL     string `form:"live_url" json:"live_url"`
	RepoURL     string `form:"repo_url" json:"repo_url"`
	Featured    bool   `form:"featured" json:"featured"`
	Revenue     string `form:"revenue" json:"revenue"`
	UsersCount  string `form:"users_count" json:"users_count"`
	SortOrder   string `form:"sort_order" json:"sort_order"`
}

// ProjectInput is the submitted project editor form.
type ProjectInput struct {
	ProjectDraft
	EditingID string `form:"editing_id"`
}

// ProjectInputFromValues is PostInputFromValues for the project editor.
func ProjectInputFromValues(v url.Values) ProjectInput {
	return ProjectInput{
		ProjectDraft: ProjectDraft{
			Title:       v.Get("title"),
			Description: v.Get("description"),
			ImageURL:    v.Get("image_url"),
			TechStack:   v.Get("tech_stack"),
			LiveURL:     v.Get("live_url"),
			RepoURL:     v.Get("repo_url"),
			Featured:    formBool(v.Get("featured")),
			Revenue:     v.Get("revenue"),
			UsersCount:  v.Get("users_count"),
			SortOrder:   v.Get("sort_order"),
		},
		EditingID: v.Get("editing_id"),
	}
}

func (d ProjectDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if _, err := d.sortOrder(); err != nil {
		return err
	}
	return nil
}

// sortOrder parses the sort order; blank means 0.
func (d ProjectDraft) sortOrder() (int, error) {
	s := strings.TrimSpace(d.SortOrder)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "sort_order", Message: "Sort order must be a whole number"}
	}
	return n, nil
}

func (d ProjectDraft) ToInsert() (*models.Project, error) {
	order, err := d.sortOrder()
	if err != nil {
		return nil, err
	}
	return &models.Project{
		Title:       d.Title,
		Description: optional(d.Description),
		ImageURL:    optional(d.ImageURL),
		TechStack:   content.ParseTechStack(d.TechStack),
		LiveURL:     optional(d.LiveURL),
		RepoURL:     optional(d.RepoURL),
		Featured:    d.Featured,
		Revenue:     optional(d.Revenue),
		UsersCount:  optional(d.UsersCount),
		SortOrder:   order,
	}, nil
}

func (d ProjectDraft) ToUpdate() (map[string]any, error) {
	p, err := d.ToInsert()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"tech_stack":  p.TechStack,
		"live_url":    p.LiveURL,
		"repo_url":    p.RepoURL,
		"featured":    p.Featured,
		"revenue":     p.Revenue,
		"users_count": p.UsersCount,
		"sort_order":  p.SortOrder,
	}, nil
}

// LoadProject fills a draft from a stored project.
func LoadProject(p *models.Project) ProjectDraft {
	return ProjectDraft{
		Title:       p.Title,
		Description: deref(p.Description),
		ImageURL:    deref(p.ImageURL),
		TechStack:   content.FormatTechStack(p.TechStack),
		LiveURL:     deref(p.LiveURL),
		RepoURL:     deref(p.RepoURL),
		Featured:    p.Featured,
		Revenue:     deref(p.Revenue),
		UsersCount:  deref(p.UsersCount),
		SortOrder:   strconv.Itoa(p.SortOrder),
	}
}

// NewProjectDraft is the empty editor state.
func NewProjectDraft() ProjectDraft { return ProjectDraft{SortOrder: "0"} }
