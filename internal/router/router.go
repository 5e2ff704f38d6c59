// Package router sets up all HTTP routes and middleware chains for the
// SkillForge backend. It organizes routes into the public content API,
// the auth endpoints, and the token-guarded dashboard API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"skillforge/internal/auth"
	"skillforge/internal/handlers"
	"skillforge/internal/middleware"
)

// Rate limits for the abuse-prone public endpoints.
const (
	contactLimit = 5
	loginLimit   = 10
	limitWindow  = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. allowedOrigins configures CORS for the
// browser frontends; empty falls back to the rs/cors default of
// allowing any origin, which suits local development.
func New(authSvc *auth.Service, authH *handlers.Auth, public *handlers.Public, dashboard *handlers.Dashboard, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	contactLimiter := middleware.NewRateLimiter(contactLimit, limitWindow)
	loginLimiter := middleware.NewRateLimiter(loginLimit, limitWindow)

	// Health check.
	r.Get("/health", public.Healthz)

	// Public content API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/courses", public.ListCourses)
		r.Get("/courses/{id}", public.GetCourse)
		r.Get("/blog", public.ListPosts)
		r.Get("/categories", public.Categories)
		r.Get("/blog/categories", public.Categories)
		r.Get("/blog/{slug}", public.GetPost)
		r.Get("/home", public.Home)

		// Dashboard API — every route requires a valid bearer token.
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(middleware.RequireToken(authSvc))

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", dashboard.ListCourses)
				r.Post("/", dashboard.CreateCourse)
				r.Patch("/{id}", dashboard.UpdateCourse)
				r.Put("/{id}", dashboard.UpdateCourse)
				r.Delete("/{id}", dashboard.DeleteCourse)
			})

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", dashboard.ListPosts)
				r.Post("/", dashboard.CreatePost)
				r.Post("/categories", dashboard.AddCategory)
				r.Get("/{slug}", dashboard.GetPost)
				r.Patch("/{slug}", dashboard.UpdatePost)
				r.Put("/{slug}", dashboard.UpdatePost)
				r.Delete("/{slug}", dashboard.DeletePost)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", dashboard.ListMessages)
				r.Get("/{id}", dashboard.GetMessage)
				r.Patch("/{id}", dashboard.MarkMessageRead)
				r.Patch("/{id}/read", dashboard.MarkMessageRead)
				r.Delete("/{id}", dashboard.DeleteMessage)
			})

			r.Get("/home", dashboard.GetHome)
			r.Patch("/home", dashboard.UpdateHome)
			r.Put("/home", dashboard.UpdateHome)
		})
	})

	// Contact form — rate-limited per client IP.
	r.Group(func(r chi.Router) {
		r.Use(contactLimiter.Middleware)
		r.Post("/contact", public.ContactSubmit)
	})

	// Auth endpoints.
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Post("/login", authH.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireToken(authSvc))
			r.Get("/validate", authH.Validate)
			r.Post("/logout", authH.Logout)
		})
	})

	return r
}
