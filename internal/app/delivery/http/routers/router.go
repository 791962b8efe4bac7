package routers

import (
	"sutra-service/internal/app/config"
	"sutra-service/internal/app/delivery/http/middlewares"
	"sutra-service/internal/app/services/assembly"
	"sutra-service/internal/app/services/documents"
	"sutra-service/internal/app/services/practitioners"
	"sutra-service/internal/app/services/roster"
	"sutra-service/internal/app/services/sessions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *sessions.SessionController,
	rosterController *roster.RosterController,
	practitionerController *practitioners.PractitionerController,
	assemblyController *assembly.AssemblyController,
	documentController *documents.DocumentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	assembleLimiter := NewAssembleLimiter(internalConfig)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			attachSessionRoutes(r, sessionController)
			attachAssemblyRoutes(r, assembleLimiter, assemblyController)
		})

		r.Route("/rosters", func(r chi.Router) {
			attachRosterRoutes(r, rosterController)
		})

		r.Route("/practitioners", func(r chi.Router) {
			attachPractitionerRoutes(r, practitionerController)
		})

		r.Route("/documents", func(r chi.Router) {
			attachDocumentRoutes(r, documentController)
		})
	})
}

func NewAssembleLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(internalConfig.App.AssembleRatePerSecond, internalConfig.App.AssembleRateBurst)
}
