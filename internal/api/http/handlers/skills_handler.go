package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-api/internal/api/dto"
	"github.com/spec-kit/portfolio-api/internal/service"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// SkillsHandler serves the skills page and the admin CRUD.
type SkillsHandler struct {
	service *service.SkillService
}

// NewSkillsHandler constructs the handler.
func NewSkillsHandler(skillService *service.SkillService) *SkillsHandler {
	return &SkillsHandler{service: skillService}
}

// List GET /skills.
func (h *SkillsHandler) List(c *fiber.Ctx) error {
	skills, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		items = append(items, dto.NewSkillResponse(&skills[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /admin/skills.
func (h *SkillsHandler) Create(c *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.Create(c.Context(), skillInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSkillResponse(skill)})
}

// Update PUT /admin/skills/:id.
func (h *SkillsHandler) Update(c *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	skill, err := h.service.Update(c.Context(), c.Params("id"), skillInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSkillResponse(skill)})
}

// Delete DELETE /admin/skills/:id.
func (h *SkillsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func skillInput(req dto.SkillRequest) service.SkillInput {
	return service.SkillInput{
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
		IconURL:   req.IconURL,
		SortOrder: req.SortOrder,
	}
}
