package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/portfolio-api/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Projects       *handlers.ProjectsHandler
	Blogs          *handlers.BlogsHandler
	Skills         *handlers.SkillsHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.Middleware
	RateLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes. Everything under /admin (and the
// dashboard prefix served to the frontend) requires the ADMIN role; the
// public site reads without a token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	account := authGroup.Group("", cfg.AuthMiddleware.Authenticate())
	account.Get("/me", cfg.Auth.Me)
	account.Post("/password/change", cfg.Auth.ChangePassword)

	app.Get("/projects", cfg.Projects.List)
	app.Get("/projects/featured", cfg.Projects.ListFeatured)
	app.Get("/projects/:slug", cfg.Projects.GetBySlug)
	app.Post("/projects/:id/like", cfg.RateLimiter, cfg.Projects.Like)

	app.Get("/blogs", cfg.Blogs.List)
	app.Get("/blogs/:id", cfg.Blogs.Get)

	app.Get("/skills", cfg.Skills.List)

	app.Post("/contact", cfg.RateLimiter, cfg.Contact.Submit)

	admin := app.Group("/admin", cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
	admin.Post("/projects", cfg.Projects.Create)
	admin.Put("/projects/:id", cfg.Projects.Update)
	admin.Delete("/projects/:id", cfg.Projects.Delete)

	admin.Get("/blogs", cfg.Blogs.List)
	admin.Get("/blogs/:id", cfg.Blogs.Get)
	admin.Post("/blogs", cfg.Blogs.Create)
	admin.Put("/blogs/:id", cfg.Blogs.Update)
	admin.Delete("/blogs/:id", cfg.Blogs.Delete)

	admin.Post("/skills", cfg.Skills.Create)
	admin.Put("/skills/:id", cfg.Skills.Update)
	admin.Delete("/skills/:id", cfg.Skills.Delete)

	admin.Get("/contact", cfg.Contact.List)
	admin.Post("/contact/:id/read", cfg.Contact.MarkRead)

	// The dashboard itself is rendered by the frontend; the prefix is still
	// gated here so an unauthenticated browser gets bounced to /login.
	app.Use("/dashboard", cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
}
