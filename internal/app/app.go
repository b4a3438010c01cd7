package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelo-api/internal/config"
	"travelo-api/internal/database"
	"travelo-api/internal/handler"
	"travelo-api/internal/middleware"
	"travelo-api/internal/repository"
	"travelo-api/internal/router"
	"travelo-api/internal/service"
	"travelo-api/internal/session"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	destinationRepo := repository.NewDestinationRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	slog.Info("database ready")

	authService, err := service.NewAuthService(cfg.SessionSecret, cfg.SessionTTL, cfg.BcryptCost, userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	uploadService, err := service.NewUploadService(cfg.UploadRoot)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize upload service: %w", err)
	}

	cookies := session.NewCookieManager(cfg.SessionTTL, cfg.IsProduction())
	authMiddleware := middleware.NewAuthMiddleware(authService, cookies)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cookies),
		Destinations: handler.NewDestinationHandler(service.NewDestinationService(destinationRepo)),
		Testimonials: handler.NewTestimonialHandler(service.NewTestimonialService(testimonialRepo)),
		Upload:       handler.NewUploadHandler(uploadService, cfg.MaxUploadSize),
		Pages:        handler.NewPageHandler(cfg.WebRoot),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
