package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// BlogRequest payload for create/update.
type BlogRequest struct {
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content"`
	ImageURL       string   `json:"image_url"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	ReadTime       string   `json:"read_time"`
	Featured       bool     `json:"featured"`
	Published      bool     `json:"published"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	SEOKeywords    []string `json:"seo_keywords"`
}

// BlogResponse is the public blog post representation.
type BlogResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt"`
	Content        string    `json:"content,omitempty"`
	ImageURL       string    `json:"image_url"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	ReadTime       string    `json:"read_time"`
	Featured       bool      `json:"featured"`
	Published      bool      `json:"published"`
	AuthorID       string    `json:"author_id"`
	Likes          int64     `json:"likes"`
	SEOTitle       string    `json:"seo_title,omitempty"`
	SEODescription string    `json:"seo_description,omitempty"`
	SEOKeywords    []string  `json:"seo_keywords,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewBlogResponse maps a domain post.
func NewBlogResponse(post *domain.BlogPost) BlogResponse {
	return BlogResponse{
		ID:             post.ID,
		Title:          post.Title,
		Excerpt:        post.Excerpt,
		Content:        post.Content,
		ImageURL:       post.ImageURL,
		Category:       post.Category,
		Tags:           post.Tags,
		ReadTime:       post.ReadTime,
		Featured:       post.Featured,
		Published:      post.Published,
		AuthorID:       post.AuthorID,
		Likes:          post.Likes,
		SEOTitle:       post.SEOTitle,
		SEODescription: post.SEODescription,
		SEOKeywords:    post.SEOKeywords,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}
