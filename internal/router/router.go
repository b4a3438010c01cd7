package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"travelo-api/internal/config"
	"travelo-api/internal/handler"
	"travelo-api/internal/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Destinations *handler.DestinationHandler
	Testimonials *handler.TestimonialHandler
	Upload       *handler.UploadHandler
	Pages        *handler.PageHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/logout", h.Auth.Logout)
			auth.With(authMiddleware.RequireSession).Get("/me", h.Auth.Me)
		})

		api.Route("/destinations", func(destinations chi.Router) {
			destinations.Get("/", h.Destinations.List)
			destinations.Get("/{id}", h.Destinations.Get)
			destinations.With(authMiddleware.RequireSession).Post("/", h.Destinations.Create)
			destinations.With(authMiddleware.RequireSession).Put("/{id}", h.Destinations.Update)
			destinations.With(authMiddleware.RequireSession).Delete("/{id}", h.Destinations.Delete)
		})

		api.Route("/testimonials", func(testimonials chi.Router) {
			testimonials.Get("/", h.Testimonials.List)
			testimonials.Get("/{id}", h.Testimonials.Get)
			testimonials.With(authMiddleware.RequireSession).Post("/", h.Testimonials.Create)
			testimonials.With(authMiddleware.RequireSession).Put("/{id}", h.Testimonials.Update)
			testimonials.With(authMiddleware.RequireSession).Delete("/{id}", h.Testimonials.Delete)
		})

		api.With(authMiddleware.RequireSession).Post("/upload", h.Upload.Upload)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadRoot))))

	// Everything else is the static site, behind the page-level session guard.
	r.Group(func(pages chi.Router) {
		pages.Use(authMiddleware.Pages)
		pages.Handle("/*", h.Pages)
	})

	return r
}
