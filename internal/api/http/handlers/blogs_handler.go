package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-api/internal/api/dto"
	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/service"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// BlogsHandler serves public blog pages and the admin CRUD.
type BlogsHandler struct {
	service *service.BlogService
}

// NewBlogsHandler constructs the handler.
func NewBlogsHandler(blogService *service.BlogService) *BlogsHandler {
	return &BlogsHandler{service: blogService}
}

// List GET /blogs. The public listing is pinned to published posts; admins
// listing through /admin/blogs see drafts too.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePaging(c)
	filter := repository.BlogFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewValidationError("featured must be a boolean", nil)
		}
		filter.Featured = &featured
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	if !isAdmin(c) {
		published := true
		filter.Published = &published
	} else if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewValidationError("published must be a boolean", nil)
		}
		filter.Published = &published
	}

	posts, total, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.BlogResponse, 0, len(posts))
	for i := range posts {
		items = append(items, dto.NewBlogResponse(&posts[i]))
	}
	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": dto.NewPagination(page, pageSize, total),
	})
}

// Get GET /blogs/:id.
func (h *BlogsHandler) Get(c *fiber.Ctx) error {
	post, err := h.service.Get(c.Context(), c.Params("id"), isAdmin(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBlogResponse(post)})
}

// Create POST /admin/blogs.
func (h *BlogsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	post, err := h.service.Create(c.Context(), claims.SubjectID, blogInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBlogResponse(post)})
}

// Update PUT /admin/blogs/:id.
func (h *BlogsHandler) Update(c *fiber.Ctx) error {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	post, err := h.service.Update(c.Context(), c.Params("id"), blogInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBlogResponse(post)})
}

// Delete DELETE /admin/blogs/:id.
func (h *BlogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func blogInput(req dto.BlogRequest) service.BlogInput {
	return service.BlogInput{
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		Category:       req.Category,
		Tags:           req.Tags,
		ReadTime:       req.ReadTime,
		Featured:       req.Featured,
		Published:      req.Published,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
	}
}

func isAdmin(c *fiber.Ctx) bool {
	claims, ok := auth.ClaimsFromContext(c)
	return ok && claims.Role.Satisfies(domain.RoleAdmin)
}
