// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forum-dev/forum-api/internal/middleware/metrics"
	"github.com/forum-dev/forum-api/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)

	r.Get("/threads/{threadId}", h.GetThreadDetail)

	// Everything below requires a valid access token
	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())

		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
	})

	return r
}
