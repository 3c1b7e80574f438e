package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/resume"
	"career-compass/internal/domain/skill"
	"career-compass/internal/domain/vocabulary"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"
	"career-compass/migrations"
)

// Engine holds the pure components that need no store: the vocabulary and
// everything built on it.
type Engine struct {
	Vocabulary *vocabulary.Vocabulary
	Extractor  *skill.Extractor
	Structurer *resume.Structurer
	Generator  *learning.Generator
}

func NewEngine(cfg config.EngineConfig, logger *log.Logger) (*Engine, error) {
	vocab, err := vocabulary.Load(cfg.VocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return &Engine{
		Vocabulary: vocab,
		Extractor:  skill.NewExtractor(vocab),
		Structurer: resume.NewStructurer(resume.NewFormatDecoder(), logger),
		Generator:  learning.NewGenerator(vocab),
	}, nil
}

type Repositories struct {
	Users           *repository.PostgresUserRepository
	Skills          *repository.PostgresSkillRepository
	UserSkills      *repository.PostgresUserSkillRepository
	Assessments     *repository.PostgresAssessmentRepository
	Careers         *repository.PostgresCareerRepository
	Recommendations *repository.PostgresRecommendationRepository
	MarketTrends    *repository.PostgresMarketTrendRepository
	Status          *repository.PostgresStatusRepository
}

type Usecases struct {
	Auth           *usecase.Auth
	User           *usecase.User
	Skill          *usecase.Skill
	UserSkill      *usecase.UserSkill
	Assessment     *usecase.Assessment
	Resume         *usecase.Resume
	Recommendation *usecase.Recommendation
	Insight        *usecase.Insight
	Career         *usecase.Career
	MarketTrend    *usecase.MarketTrend
	Status         *usecase.Status
}

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    *jwt.HMACService

	Engine   *Engine
	Repos    Repositories
	Usecases Usecases
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	engine, err := NewEngine(cfg.Engine, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Engine: engine,
	}
	c.wire()
	return c, nil
}

func (c *Container) wire() {
	db := c.DB
	c.Repos = Repositories{
		Users:           repository.NewPostgresUserRepository(db),
		Skills:          repository.NewPostgresSkillRepository(db),
		UserSkills:      repository.NewPostgresUserSkillRepository(db),
		Assessments:     repository.NewPostgresAssessmentRepository(db),
		Careers:         repository.NewPostgresCareerRepository(db),
		Recommendations: repository.NewPostgresRecommendationRepository(db),
		MarketTrends:    repository.NewPostgresMarketTrendRepository(db),
		Status:          repository.NewPostgresStatusRepository(db),
	}

	r := c.Repos
	e := c.Engine
	c.Usecases = Usecases{
		Auth:        usecase.NewAuthUsecase(r.Users, c.JWT),
		User:        usecase.NewUserUsecase(r.Users),
		Skill:       usecase.NewSkillUsecase(r.Skills, e.Extractor),
		UserSkill:   usecase.NewUserSkillUsecase(r.UserSkills, r.Skills, e.Extractor, c.Cache),
		Assessment:  usecase.NewAssessmentUsecase(r.Assessments),
		Resume: usecase.NewResumeUsecase(e.Structurer, e.Extractor, r.Skills, r.UserSkills, c.Cache, c.Logger, usecase.ResumeOptions{
			Threshold: c.Config.Engine.ConfidenceThreshold,
			MaxBytes:  c.Config.Engine.ResumeMaxBytes,
		}),
		Recommendation: usecase.NewRecommendationUsecase(usecase.RecommendationDeps{
			Users:           r.Users,
			UserSkills:      r.UserSkills,
			Assessments:     r.Assessments,
			Careers:         r.Careers,
			Recommendations: r.Recommendations,
			Generator:       e.Generator,
			Cache:           c.Cache,
			Notifier:        ws.NewNotifier(c.Hub),
			Logger:          c.Logger,
		}),
		Insight:     usecase.NewInsightUsecase(r.Users, r.MarketTrends, r.Recommendations, r.Careers, c.Cache, c.Logger),
		Career:      usecase.NewCareerUsecase(r.Careers, r.Recommendations),
		MarketTrend: usecase.NewMarketTrendUsecase(r.Skills, r.MarketTrends, e.Vocabulary, c.Cache, c.Logger),
		Status:      usecase.NewStatusUsecase(r.Status, c.DB, c.Cache),
	}
}

// Migrate applies the embedded schema files.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{Files: migrations.Files, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

// Seed loads the skill and career catalog. Seeders are idempotent.
func (c *Container) Seed(ctx context.Context) error {
	r := seeder.Runner{Seeders: seeder.Defaults()}
	return r.Run(ctx, c.DB)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.Hub.Close()
	if err := c.Cache.Close(); err != nil {
		c.Logger.Printf("cache close error: %v", err)
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
