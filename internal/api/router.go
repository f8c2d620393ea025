package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/api/docs"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/api/handler"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/repository"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/service"
)

type Dependencies struct {
	LivenessProvider    provider.LivenessProvider
	FaceComparer        provider.FaceComparer
	ReferenceStore      *repository.ReferenceStore
	AttemptRepo         *repository.AttemptRepository
	DB                  *pgxpool.Pool
	APIKey              string
	SimilarityThreshold float64
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Faceproof API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-API-Key",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	var db handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		db = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(db)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// API v1 group with authentication
	v1 := r.app.Group("/v1")

	// Only configure authenticated routes if dependencies were provided
	if r.deps != nil {
		v1.Use(middleware.APIKeyAuth(r.deps.APIKey))

		// Liveness service and routes
		livenessService := service.NewLivenessService(r.deps.LivenessProvider, r.logger)
		livenessHandler := handler.NewLivenessHandler(livenessService, r.logger)

		v1.Post("/liveness/sessions", livenessHandler.CreateSession)
		v1.Get("/liveness/sessions/:session_id/results", livenessHandler.GetResults)

		// Identification service, shared by compare, reference and identify routes
		identificationService := service.NewIdentificationService(
			r.deps.FaceComparer,
			livenessService,
			r.deps.ReferenceStore,
			r.deps.AttemptRepo,
			r.logger,
		)
		if r.deps.SimilarityThreshold > 0 {
			identificationService = identificationService.WithThreshold(r.deps.SimilarityThreshold)
		}

		compareHandler := handler.NewCompareHandler(identificationService, r.logger)
		v1.Post("/faces/compare", compareHandler.Compare)

		referenceHandler := handler.NewReferenceHandler(identificationService, r.logger)
		v1.Post("/references", referenceHandler.Register)
		v1.Get("/references", referenceHandler.List)
		v1.Delete("/references/:id", referenceHandler.Delete)

		identifyHandler := handler.NewIdentifyHandler(identificationService, r.logger)
		v1.Post("/identify", identifyHandler.Identify)
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
