package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/padsala/padsala-api/internal/api"
	apiMiddleware "github.com/padsala/padsala-api/internal/api/middleware"
)

// setupRouter registers every route on a chi router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.passwordVerifier, &app.config.Auth)
	syllabusHandler := api.NewSyllabusHandler(app.syllabusService)
	planHandler := api.NewPlanHandler(app.planService)
	scheduleHandler := api.NewScheduleHandler(app.scheduleService)
	sessionHandler := api.NewSessionHandler(app.sessionService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Get("/metadata", syllabusHandler.Metadata)
		r.Get("/syllabus/chapters", syllabusHandler.Chapters)
		r.Post("/replan-day", planHandler.ReplanDay)
		r.With(authMiddleware.OptionalAuthenticate).Post("/generate-schedule", planHandler.GenerateSchedule)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/mastery", sessionHandler.Mastery)
			r.Post("/sessions", sessionHandler.LogSession)

			r.Post("/schedules", scheduleHandler.Save)
			r.Get("/schedules", scheduleHandler.List)
			r.Get("/schedules/{id}", scheduleHandler.Get)
			r.Delete("/schedules/{id}", scheduleHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
