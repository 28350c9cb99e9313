package dto

import (
	"time"

	"portfolio/models"
)

type PostDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage *string   `json:"cover_image"`
	Published  bool      `json:"published"`
	AuthorID   string    `json:"author_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostInputDTO is the body of admin create/update requests.
type PostInputDTO struct {
	Title      string `json:"title" example:"Building in public"`
	Slug       string `json:"slug" example:"building-in-public"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

type PublishedStateDTO struct {
	ID        string `json:"id"`
	Published bool   `json:"published"`
}

func NewPostDTO(p models.BlogPost) PostDTO {
	d := PostDTO{
		ID:         p.ID.Hex(),
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Published:  p.Published,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if !p.AuthorID.IsZero() {
		d.AuthorID = p.AuthorID.Hex()
	}
	return d
}

func NewPostDTOs(posts []models.BlogPost) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}
