package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// ProjectRequest payload for create/update.
type ProjectRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	LongDescription string                 `json:"long_description"`
	ImageURL        string                 `json:"image_url"`
	Technologies    []string               `json:"technologies"`
	Category        domain.ProjectCategory `json:"category"`
	GitHubURL       string                 `json:"github_url"`
	LiveURL         string                 `json:"live_url"`
	Featured        bool                   `json:"featured"`
	StartDate       time.Time              `json:"start_date"`
	Duration        string                 `json:"duration"`
}

// ProjectResponse is the public project representation.
type ProjectResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Slug            string                 `json:"slug"`
	Description     string                 `json:"description"`
	LongDescription string                 `json:"long_description,omitempty"`
	ImageURL        string                 `json:"image_url"`
	Technologies    []string               `json:"technologies"`
	Category        domain.ProjectCategory `json:"category"`
	GitHubURL       string                 `json:"github_url"`
	LiveURL         string                 `json:"live_url"`
	Featured        bool                   `json:"featured"`
	Views           int64                  `json:"views"`
	Likes           int64                  `json:"likes"`
	StartDate       time.Time              `json:"start_date"`
	Duration        string                 `json:"duration"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// NewProjectResponse maps a domain project.
func NewProjectResponse(project *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:              project.ID,
		Title:           project.Title,
		Slug:            project.Slug,
		Description:     project.Description,
		LongDescription: project.LongDescription,
		ImageURL:        project.ImageURL,
		Technologies:    project.Technologies,
		Category:        project.Category,
		GitHubURL:       project.GitHubURL,
		LiveURL:         project.LiveURL,
		Featured:        project.Featured,
		Views:           project.Views,
		Likes:           project.Likes,
		StartDate:       project.StartDate,
		Duration:        project.Duration,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}

// Pagination describes a page of results.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes page metadata from totals.
func NewPagination(page, pageSize, total int) Pagination {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := (total + pageSize - 1) / pageSize
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
