package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-api/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/config"
	"github.com/spec-kit/portfolio-api/internal/domain"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/service"
)

const routerTestCookie = "portfolio_session"

type fixedBlogRepo struct {
	posts map[string]*domain.BlogPost
}

func (r *fixedBlogRepo) Create(_ context.Context, _ *domain.BlogPost) error { return nil }
func (r *fixedBlogRepo) Update(_ context.Context, _ *domain.BlogPost) error { return nil }
func (r *fixedBlogRepo) Delete(_ context.Context, _ string) error           { return nil }

func (r *fixedBlogRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

func (r *fixedBlogRepo) List(_ context.Context, _ repository.BlogFilter) ([]domain.BlogPost, int, error) {
	return []domain.BlogPost{}, 0, nil
}

func newRouterApp(tm *auth.TokenManager, blogs repository.BlogRepository) *fiber.App {
	middleware := auth.NewMiddleware(auth.NewGate(tm), []auth.TokenSource{
		auth.HeaderTokenSource{},
		auth.CookieTokenSource{Name: routerTestCookie},
	}, "/login")

	app := fiber.New()
	app.Use(errorHandlingMiddleware(zap.NewNop(), nil))

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("portfolio-api", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(nil, config.AuthConfig{CookieName: routerTestCookie}),
		Projects:       handlers.NewProjectsHandler(nil),
		Blogs:          handlers.NewBlogsHandler(service.NewBlogService(blogs)),
		Skills:         handlers.NewSkillsHandler(nil),
		Contact:        handlers.NewContactHandler(nil),
		AuthMiddleware: middleware,
		RateLimiter: func(c *fiber.Ctx) error {
			return c.Next()
		},
	})
	return app
}

func adminToken(t *testing.T, tm *auth.TokenManager) string {
	t.Helper()
	token, _, err := tm.Issue(&domain.Subject{ID: "subj-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return token
}

func TestAdminFetchesDraftPost(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 1)
	repo := &fixedBlogRepo{posts: map[string]*domain.BlogPost{
		"post-1": {ID: "post-1", Title: "Draft Notes", Published: false},
	}}
	app := newRouterApp(tm, repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/blogs/post-1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, tm))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Title     string `json:"title"`
			Published bool   `json:"published"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Title != "Draft Notes" || body.Data.Published {
		t.Errorf("body = %+v", body.Data)
	}
}

func TestPublicGetHidesDraftPost(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 1)
	repo := &fixedBlogRepo{posts: map[string]*domain.BlogPost{
		"post-1": {ID: "post-1", Title: "Draft Notes", Published: false},
	}}
	app := newRouterApp(tm, repo)

	req := httptest.NewRequest(http.MethodGet, "/blogs/post-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAdminDraftRouteRequiresToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 1)
	app := newRouterApp(tm, &fixedBlogRepo{posts: map[string]*domain.BlogPost{}})

	req := httptest.NewRequest(http.MethodGet, "/admin/blogs/post-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 1)
	app := newRouterApp(tm, &fixedBlogRepo{posts: map[string]*domain.BlogPost{}})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == routerTestCookie && cookie.Value == "" && cookie.Expires.Before(time.Now()) {
			cleared = true
		}
	}
	if !cleared {
		t.Errorf("session cookie not cleared: %v", resp.Cookies())
	}
}
