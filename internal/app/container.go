package app

import (
	"context"
	"log"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/ai/gemini"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/config"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/handler"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/routes"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/jwt"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
	ucapp "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/application"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/assistant"
	ucauth "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/auth"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/chat"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/feed"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/match"
	ucresume "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/resume"
)

// Container wires the store, the LLM client, and every usecase behind the
// HTTP handlers.
type Container struct {
	Config config.Config
	Store  *store.Redis
	Routes *routes.Registry
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	st := store.NewRedis(store.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
	}, logger)

	generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	catalog := job.DefaultCatalog()

	matchSvc := match.NewService(generator, st, logger)
	assistantSvc := assistant.NewService(generator, logger)

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(),
		Auth:           handler.NewAuthHandler(ucauth.NewService(st, tokens)),
		Jobs:           handler.NewJobsHandler(feed.NewService(catalog, st, matchSvc)),
		Applications:   handler.NewApplicationHandler(ucapp.NewService(st, logger)),
		Resume:         handler.NewResumeHandler(ucresume.NewService(st)),
		Chat:           handler.NewChatHandler(chat.NewService(assistantSvc, catalog, st, logger)),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	}

	return &Container{Config: cfg, Store: st, Routes: registry}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
