package service

import (
	"context"
	"strings"

	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/repository"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// SkillService manages skills shown on the public site.
type SkillService struct {
	skills repository.SkillRepository
}

// NewSkillService builds the service.
func NewSkillService(skills repository.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

// SkillInput carries create/update fields.
type SkillInput struct {
	Name      string
	Category  string
	Level     int
	IconURL   string
	SortOrder int
}

func (in SkillInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	if in.Level < 0 || in.Level > 100 {
		return apperrors.NewValidationError("level must be 0-100", map[string]any{"level": in.Level})
	}
	return nil
}

// List returns all skills ordered by category and sort order.
func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx)
}

// Create stores a new skill.
func (s *SkillService) Create(ctx context.Context, input SkillInput) (*domain.Skill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	skill := &domain.Skill{
		Name:      input.Name,
		Category:  input.Category,
		Level:     input.Level,
		IconURL:   input.IconURL,
		SortOrder: input.SortOrder,
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Update overwrites a skill.
func (s *SkillService) Update(ctx context.Context, id string, input SkillInput) (*domain.Skill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	skill.Name = input.Name
	skill.Category = input.Category
	skill.Level = input.Level
	skill.IconURL = input.IconURL
	skill.SortOrder = input.SortOrder

	if err := s.skills.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.skills.Delete(ctx, id)
}
