package domain

import "time"

// ProjectCategory classifies portfolio projects.
type ProjectCategory string

const (
	ProjectCategoryFullStack ProjectCategory = "FULL_STACK"
	ProjectCategoryFrontend  ProjectCategory = "FRONTEND"
	ProjectCategoryBackend   ProjectCategory = "BACKEND"
	ProjectCategoryMobile    ProjectCategory = "MOBILE"
	ProjectCategoryDesktop   ProjectCategory = "DESKTOP"
)

// ValidProjectCategory reports whether the category is known.
func ValidProjectCategory(c ProjectCategory) bool {
	switch c {
	case ProjectCategoryFullStack, ProjectCategoryFrontend, ProjectCategoryBackend,
		ProjectCategoryMobile, ProjectCategoryDesktop:
		return true
	}
	return false
}

// Project is a portfolio entry shown on the public site and managed from the
// admin dashboard.
type Project struct {
	ID              string
	Title           string
	Slug            string
	Description     string
	LongDescription string
	ImageURL        string
	Technologies    []string
	Category        ProjectCategory
	GitHubURL       string
	LiveURL         string
	Featured        bool
	Views           int64
	Likes           int64
	StartDate       time.Time
	Duration        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
