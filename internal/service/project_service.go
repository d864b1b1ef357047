package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/repository"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

const (
	featuredCacheKey = "projects:featured"
	featuredCacheTTL = 60 * time.Second
	featuredLimit    = 6
)

// ProjectService manages portfolio projects.
type ProjectService struct {
	projects   repository.ProjectRepository
	cache      *redis.Client
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProjectService builds the service. cache may be nil; the featured list
// then always hits the store.
func NewProjectService(projects repository.ProjectRepository, cache *redis.Client, dispatcher events.Dispatcher, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{projects: projects, cache: cache, dispatcher: dispatcher, logger: logger}
}

// ProjectInput carries create/update fields.
type ProjectInput struct {
	Title           string
	Description     string
	LongDescription string
	ImageURL        string
	Technologies    []string
	Category        domain.ProjectCategory
	GitHubURL       string
	LiveURL         string
	Featured        bool
	StartDate       time.Time
	Duration        string
}

func (in ProjectInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return apperrors.NewValidationError("title and description required", nil)
	}
	if len(in.Technologies) == 0 {
		return apperrors.NewValidationError("at least one technology required", nil)
	}
	if !domain.ValidProjectCategory(in.Category) {
		return apperrors.NewValidationError("unknown category", map[string]any{"category": in.Category})
	}
	return nil
}

// List returns a filtered page of projects with the total match count.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, int, error) {
	return s.projects.List(ctx, filter)
}

// ListFeatured returns the newest featured projects, served from a short
// Redis cache when available.
func (s *ProjectService) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, featuredCacheKey).Bytes()
		if err == nil {
			var projects []domain.Project
			if json.Unmarshal(cached, &projects) == nil {
				return projects, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("featured cache read failed", zap.Error(err))
		}
	}

	projects, err := s.projects.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(projects); err == nil {
			if err := s.cache.Set(ctx, featuredCacheKey, encoded, featuredCacheTTL).Err(); err != nil {
				s.logger.Warn("featured cache write failed", zap.Error(err))
			}
		}
	}
	return projects, nil
}

// GetBySlug loads a project for the public detail page and counts the view.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.projects.IncrementViews(ctx, project.ID); err != nil {
		s.logger.Warn("view count increment failed", zap.String("project_id", project.ID), zap.Error(err))
	} else {
		project.Views++
	}
	return project, nil
}

// Like increments the like counter and returns the new total.
func (s *ProjectService) Like(ctx context.Context, id string) (int64, error) {
	likes, err := s.projects.IncrementLikes(ctx, id)
	if err != nil {
		return 0, err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventProjectLiked, events.ProjectLikedPayload{
			ProjectID: id,
			Likes:     likes,
		}))
	}
	return likes, nil
}

// Create stores a new project. The slug is derived from the title and must be
// unique.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Title:           input.Title,
		Slug:            Slugify(input.Title),
		Description:     input.Description,
		LongDescription: input.LongDescription,
		ImageURL:        input.ImageURL,
		Technologies:    input.Technologies,
		Category:        input.Category,
		GitHubURL:       input.GitHubURL,
		LiveURL:         input.LiveURL,
		Featured:        input.Featured,
		StartDate:       input.StartDate,
		Duration:        input.Duration,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return project, nil
}

// Update overwrites a project's editable fields.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Title = input.Title
	project.Slug = Slugify(input.Title)
	project.Description = input.Description
	project.LongDescription = input.LongDescription
	project.ImageURL = input.ImageURL
	project.Technologies = input.Technologies
	project.Category = input.Category
	project.GitHubURL = input.GitHubURL
	project.LiveURL = input.LiveURL
	project.Featured = input.Featured
	project.StartDate = input.StartDate
	project.Duration = input.Duration

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return project, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *ProjectService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, featuredCacheKey).Err(); err != nil {
		s.logger.Warn("featured cache invalidation failed", zap.Error(err))
	}
}

// Slugify lowercases the title and collapses non-alphanumerics into hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
