package api

import (
	"net/http"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/api/handlers"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/api/middleware"
	"github.com/CHARUMATHIBALA/giftshop-backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	giftHandler := handlers.NewGiftHandler(services.Gift)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected gift routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/gifts", func(r chi.Router) {
				r.Post("/", giftHandler.Create)
				r.Get("/", giftHandler.List)
				r.Put("/{id}", giftHandler.Update)
				r.Delete("/{id}", giftHandler.Delete)
			})
		})
	})

	return r
}
