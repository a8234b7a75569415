package setup

import (
	"github.com/forum-dev/forum-api/internal/config"
	"github.com/forum-dev/forum-api/internal/generator"
	"github.com/forum-dev/forum-api/internal/handler"
	"github.com/forum-dev/forum-api/internal/middleware"
	"github.com/forum-dev/forum-api/internal/sanitize"
	"github.com/forum-dev/forum-api/internal/service"
	"github.com/forum-dev/forum-api/internal/storage/pg"
	"github.com/forum-dev/forum-api/internal/token"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, generator.UUID{}, generator.SystemClock{})
	if err != nil {
		return nil, err
	}

	sanitizer := sanitize.New()
	tokens := token.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, tokens)
	threads := service.NewThread(storage, storage, storage, storage, sanitizer)
	comments := service.NewComment(storage, storage, sanitizer)
	replies := service.NewReply(storage, storage, storage, sanitizer)
	likes := service.NewLike(storage, storage)

	h := handler.New(auth, threads, comments, replies, likes)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
	}, nil
}
