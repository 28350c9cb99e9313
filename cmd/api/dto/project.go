package dto

import (
	"time"

	"portfolio/models"
)

type ProjectDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	TechStack   []string  `json:"tech_stack"`
	LiveURL     *string   `json:"live_url"`
	RepoURL     *string   `json:"repo_url"`
	Featured    bool      `json:"featured"`
	Revenue     *string   `json:"revenue"`
	UsersCount  *string   `json:"users_count"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInputDTO is the body of admin create/update requests. TechStack is comma separated.
type ProjectInputDTO struct {
	Title       string `json:"title" example:"ShipFast"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	TechStack   string `json:"tech_stack" example:"Next.js, Stripe, MongoDB"`
	LiveURL     string `json:"live_url"`
	RepoURL     string `json:"repo_url"`
	Featured    bool   `json:"featured"`
	Revenue     string `json:"revenue" example:"$5k/mo"`
	UsersCount  string `json:"users_count" example:"2,000+"`
	SortOrder   string `json:"sort_order" example:"0"`
}

type FeaturedStateDTO struct {
	ID       string `json:"id"`
	Featured bool   `json:"featured"`
}

func NewProjectDTO(p models.Project) ProjectDTO {
	stack := p.TechStack
	if stack == nil {
		stack = []string{}
	}
	return ProjectDTO{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		TechStack:   stack,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
		Featured:    p.Featured,
		Revenue:     p.Revenue,
		UsersCount:  p.UsersCount,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectDTO(p))
	}
	return out
}
