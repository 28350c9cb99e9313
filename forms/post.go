// Package forms holds the admin drafts and converts them into store payloads.
package forms

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/content"
	"portfolio/models"
)

// PostDraft mirrors a BlogPost minus the backend-assigned fields.
type PostDraft struct {
	Title      string `form:"title" json:"title"`
	Slug       string `form:"slug" json:"slug"`
	Excerpt    string `form:"excerpt" json:"excerpt"`
	Content    string `form:"content" json:"content"`
	CoverImage string `form:"cover_image" json:"cover_image"`
	Published  bool   `form:"published" json:"published"`
}

// Validate requires title, slug and content.
func (d PostDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Slug) == "" || strings.TrimSpace(d.Content) == "" {
		return &ValidationError{Field: "title,slug,content", Message: "Title, slug, and content are required"}
	}
	return nil
}

// ToInsert converts the draft into a new post; empty optional strings become nil.
func (d PostDraft) ToInsert(authorID primitive.ObjectID) *models.BlogPost {
	return &models.BlogPost{
		Title:      d.Title,
		Slug:       d.Slug,
		Excerpt:    optional(d.Excerpt),
		Content:    d.Content,
		CoverImage: optional(d.CoverImage),
		Published:  d.Published,
		AuthorID:   authorID,
	}
}

// ToUpdate returns the $set fields for an existing post. The author is left untouched.
func (d PostDraft) ToUpdate() map[string]any {
	return map[string]any{
		"title":       d.Title,
		"slug":        d.Slug,
		"excerpt":     optional(d.Excerpt),
		"content":     d.Content,
		"cover_image": optional(d.CoverImage),
		"published":   d.Published,
	}
}

// PostForm is the edit state behind the post editor.
// The slug follows the title only while creating and until the slug is typed by hand.
type PostForm struct {
	Draft PostDraft

	editingID  string
	slugManual bool
}

func NewPostForm() *PostForm { return &PostForm{} }

func (f *PostForm) EditingID() string { return f.editingID }
func (f *PostForm) IsEditing() bool   { return f.editingID != "" }

// SlugAuto reports whether SetTitle still rewrites the slug.
func (f *PostForm) SlugAuto() bool { return !f.IsEditing() && !f.slugManual }

func (f *PostForm) SetTitle(title string) {
	f.Draft.Title = title
	if f.SlugAuto() {
		f.Draft.Slug = content.Slugify(title)
	}
}

func (f *PostForm) SetSlug(slug string) {
	f.Draft.Slug = slug
	f.slugManual = true
}

// Load puts an existing post into the form and freezes slug derivation.
func (f *PostForm) Load(p *models.BlogPost) {
	f.editingID = p.ID.Hex()
	f.slugManual = false
	f.Draft = PostDraft{
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    deref(p.Excerpt),
		Content:    p.Content,
		CoverImage: deref(p.CoverImage),
		Published:  p.Published,
	}
}

func (f *PostForm) Reset() { *f = PostForm{} }

// PostInput is the submitted editor form.
type PostInput struct {
	PostDraft
	EditingID string `form:"editing_id"`
	SlugAuto  bool   `form:"slug_auto"`
}

// PostInputFromValues reads the editor fields straight from submitted form
// values. Used to keep the draft when binding rejects the form.
func PostInputFromValues(v url.Values) PostInput {
	return PostInput{
		PostDraft: PostDraft{
			Title:      v.Get("title"),
			Slug:       v.Get("slug"),
			Excerpt:    v.Get("excerpt"),
			Content:    v.Get("content"),
			CoverImage: v.Get("cover_image"),
			Published:  formBool(v.Get("published")),
		},
		EditingID: v.Get("editing_id"),
		SlugAuto:  formBool(v.Get("slug_auto")),
	}
}

// PostFormFromInput rebuilds the editor state of a submitted form. When the
// browser left the slug on auto (or sent none) a new post gets a derived slug.
func PostFormFromInput(in PostInput) *PostForm {
	f := &PostForm{editingID: strings.TrimSpace(in.EditingID)}
	f.Draft = in.PostDraft
	f.Draft.Slug = strings.TrimSpace(in.Slug)

	if !f.IsEditing() && (in.SlugAuto || f.Draft.Slug == "") {
		f.SetTitle(in.Title)
		return f
	}
	f.slugManual = !f.IsEditing()
	return f
}

// formBool accepts what strconv.ParseBool does plus the browser checkbox default "on".
// Anything else is false.
func formBool(s string) bool {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "on") {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
