package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/padsala/padsala-api/internal/config"
	"github.com/padsala/padsala-api/internal/domain/calendar"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/generation"
	"github.com/padsala/padsala-api/internal/platform/llm"
	"github.com/padsala/padsala-api/internal/platform/postgres"
	"github.com/padsala/padsala-api/internal/service"
	"github.com/padsala/padsala-api/internal/service/auth"
)

// application holds the wired dependencies of a running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	planService     service.PlanService
	syllabusService service.SyllabusService
	scheduleService service.ScheduleService
	sessionService  service.SessionService
	userService     service.UserService
}

// newApplication builds stores, the planner and the services on top of an
// open database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.passwordVerifier = auth.NewBcryptVerifier()
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	syllabusStore := postgres.NewPostgresSyllabusStore(db, logger)
	scheduleStore := postgres.NewPostgresScheduleStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	masteryStore := postgres.NewPostgresMasteryStore(db, logger)

	conv := calendar.NewBikramSambat()
	planner := studyplan.NewPlanner(conv, studyplan.SystemClock{},
		studyplan.WithLocation(cfg.Planner.Location()),
		studyplan.WithMaxHorizonDays(cfg.Planner.MaxHorizonDays),
		studyplan.WithLogger(logger),
	)

	topics, err := newTopicGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	if app.syllabusService, err = service.NewSyllabusService(syllabusStore, topics, conv, planner, logger); err != nil {
		return nil, fmt.Errorf("failed to create syllabus service: %w", err)
	}
	if app.planService, err = service.NewPlanService(
		planner, app.syllabusService, masteryStore, cfg.Planner.DefaultOptions(), logger,
	); err != nil {
		return nil, fmt.Errorf("failed to create plan service: %w", err)
	}
	if app.scheduleService, err = service.NewScheduleService(scheduleStore, planner, logger); err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}
	if app.sessionService, err = service.NewSessionService(sessionStore, masteryStore, db, logger); err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	if app.userService, err = service.NewUserService(userStore, db, logger); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("application initialized",
		slog.Int("utc_offset_minutes", cfg.Planner.UTCOffsetMinutes),
		slog.Int("max_horizon_days", cfg.Planner.MaxHorizonDays))
	return app, nil
}

// newTopicGenerator chains the configured LLM, when there is one, in front
// of the keyword fallback.
func newTopicGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.TopicGenerator, error) {
	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	if provider == nil {
		logger.Info("LLM topic generation disabled, using keyword topics")
		return generation.KeywordTopics{}, nil
	}

	gen, err := llm.NewTopicGenerator(provider, cfg.Timeout(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize topic generator: %w", err)
	}
	logger.Info("LLM topic generation enabled",
		slog.String("provider", cfg.Provider),
		slog.String("model", provider.ModelID()))
	return generation.Chain{gen, generation.KeywordTopics{}}, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		return
	}
	app.logger.Info("database connection closed")
}
