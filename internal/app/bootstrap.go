package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/config"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: "ai-powered-job-tracker"})

	f.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.App.CORSOrigin},
	}))
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())

	container.Routes.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
