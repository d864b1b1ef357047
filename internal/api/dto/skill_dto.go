package dto

import (
	"time"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// SkillRequest payload for create/update.
type SkillRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	IconURL   string `json:"icon_url"`
	SortOrder int    `json:"sort_order"`
}

// SkillResponse representation.
type SkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	IconURL   string    `json:"icon_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSkillResponse maps a domain skill.
func NewSkillResponse(skill *domain.Skill) SkillResponse {
	return SkillResponse{
		ID:        skill.ID,
		Name:      skill.Name,
		Category:  skill.Category,
		Level:     skill.Level,
		IconURL:   skill.IconURL,
		SortOrder: skill.SortOrder,
		CreatedAt: skill.CreatedAt,
		UpdatedAt: skill.UpdatedAt,
	}
}
