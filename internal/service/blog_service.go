package service

import (
	"context"
	"strings"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/repository"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// BlogService manages blog posts.
type BlogService struct {
	blogs repository.BlogRepository
}

// NewBlogService builds the service.
func NewBlogService(blogs repository.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// BlogInput carries create/update fields.
type BlogInput struct {
	Title          string
	Excerpt        string
	Content        string
	ImageURL       string
	Category       string
	Tags           []string
	ReadTime       string
	Featured       bool
	Published      bool
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
}

func (in BlogInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return apperrors.NewValidationError("title and content required", nil)
	}
	return nil
}

// List returns a filtered page of posts. Non-admin callers only ever see
// published posts; the handler pins Published=true for them.
func (s *BlogService) List(ctx context.Context, filter repository.BlogFilter) ([]domain.BlogPost, int, error) {
	return s.blogs.List(ctx, filter)
}

// Get loads a single post. Unpublished posts are hidden from non-admins.
func (s *BlogService) Get(ctx context.Context, id string, includeUnpublished bool) (*domain.BlogPost, error) {
	post, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Published && !includeUnpublished {
		return nil, apperrors.NewNotFound("blog post", map[string]any{"id": id})
	}
	return post, nil
}

// Create stores a new post authored by the given subject.
func (s *BlogService) Create(ctx context.Context, authorID string, input BlogInput) (*domain.BlogPost, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		Title:          input.Title,
		Excerpt:        input.Excerpt,
		Content:        input.Content,
		ImageURL:       input.ImageURL,
		Category:       input.Category,
		Tags:           input.Tags,
		ReadTime:       input.ReadTime,
		Featured:       input.Featured,
		Published:      input.Published,
		AuthorID:       authorID,
		SEOTitle:       input.SEOTitle,
		SEODescription: input.SEODescription,
		SEOKeywords:    input.SEOKeywords,
	}
	if err := s.blogs.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update overwrites a post's editable fields.
func (s *BlogService) Update(ctx context.Context, id string, input BlogInput) (*domain.BlogPost, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	post, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.ImageURL = input.ImageURL
	post.Category = input.Category
	post.Tags = input.Tags
	post.ReadTime = input.ReadTime
	post.Featured = input.Featured
	post.Published = input.Published
	post.SEOTitle = input.SEOTitle
	post.SEODescription = input.SEODescription
	post.SEOKeywords = input.SEOKeywords

	if err := s.blogs.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.blogs.Delete(ctx, id)
}
