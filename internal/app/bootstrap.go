package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	bodyLimit := c.Config.Engine.ResumeMaxBytes + 1<<20
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, runs boot-time migrations and seeders when
// enabled, and starts the websocket hub. The cleanup func releases every
// resource the container opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := c.Migrate(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	if cfg.Database.AutoSeed {
		if err := c.Seed(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	go c.Hub.Run()

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessLog.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	uc := c.Usecases
	handlers := v1.Handlers{
		Auth:           handler.NewAuthHandler(uc.Auth),
		User:           handler.NewUserHandler(uc.User),
		UserSkill:      handler.NewUserSkillHandler(uc.UserSkill),
		Assessment:     handler.NewAssessmentHandler(uc.Assessment),
		Resume:         handler.NewResumeHandler(uc.Resume, int64(c.Config.Engine.ResumeMaxBytes)),
		Recommendation: handler.NewRecommendationHandler(uc.Recommendation, uc.Career),
		Insight:        handler.NewInsightHandler(uc.Insight),
		Skill:          handler.NewSkillHandler(uc.Skill),
		Career:         handler.NewCareerHandler(uc.Career),
		MarketTrend:    handler.NewMarketTrendHandler(uc.MarketTrend),
		WS:             ws.NewHandler(c.Hub, c.Logger),
	}

	authMw := middleware.NewAuthMiddleware(c.JWT)
	routes.NewRegistry(handler.NewHealthHandler(uc.Status), handlers, authMw.Middleware()).Register(app)
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
