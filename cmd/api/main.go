package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/portfolio-api/internal/api/http"
	"github.com/spec-kit/portfolio-api/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-api/internal/auth"
	"github.com/spec-kit/portfolio-api/internal/config"
	"github.com/spec-kit/portfolio-api/internal/events"
	"github.com/spec-kit/portfolio-api/internal/observability"
	"github.com/spec-kit/portfolio-api/internal/persistence"
	"github.com/spec-kit/portfolio-api/internal/repository"
	"github.com/spec-kit/portfolio-api/internal/service"
	"github.com/spec-kit/portfolio-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rdb := persistence.NewRedis(cfg.Redis, logger)
	defer rdb.Close()

	pool := pg.PoolHandle()
	subjectRepo := repository.NewSubjectRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	skillRepo := repository.NewSkillRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(*cfg, subjectRepo, dispatcher)
	projectService := service.NewProjectService(projectRepo, rdb.Client, dispatcher, logger)
	blogService := service.NewBlogService(blogRepo)
	skillService := service.NewSkillService(skillRepo)
	contactService := service.NewContactService(contactRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	gate := auth.NewGate(authService.TokenManager())
	tokenSources := []auth.TokenSource{auth.HeaderTokenSource{}}
	if cfg.Auth.CookieName != "" {
		tokenSources = append(tokenSources, auth.CookieTokenSource{Name: cfg.Auth.CookieName})
	}
	authMiddleware := auth.NewMiddleware(gate, tokenSources, cfg.Auth.LoginPath)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.FrontendURL)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rdb),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth),
		Projects:       handlers.NewProjectsHandler(projectService),
		Blogs:          handlers.NewBlogsHandler(blogService),
		Skills:         handlers.NewSkillsHandler(skillService),
		Contact:        handlers.NewContactHandler(contactService),
		AuthMiddleware: authMiddleware,
		RateLimiter:    httptransport.RateLimiter(rdb.Client, cfg.RateLimit, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
