package routes

import (
	"fmt"

	"competition-registration-backend/internal/api/handlers"
	"competition-registration-backend/internal/api/middleware"
	"competition-registration-backend/internal/auth"
	"competition-registration-backend/internal/config"
	"competition-registration-backend/internal/metrics"
	"competition-registration-backend/internal/repository"
	"competition-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application. The returned
// worker is not started; the caller owns its lifetime.
func SetupRoutes(db *gorm.DB, cfg *config.Config, reg prometheus.Registerer) (*gin.Engine, *service.RepairWorker, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	rosterMetrics := metrics.NewRosterMetrics(reg)

	// Initialize repositories
	registrationRepo := repository.NewRegistrationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	// Initialize services
	catalog := service.NewCatalog(eventRepo, studentRepo, cfg.DefaultMaxTeamSize)
	codes := service.NewInviteCodeGenerator(cfg.InviteCodeMaxRetries, cfg.InviteCodeRetryDelay())
	repairs := service.NewRepairQueue(rosterMetrics)
	engine := service.NewTeamRosterEngine(
		registrationRepo,
		catalog,
		codes,
		repairs,
		rosterMetrics,
		otel.Tracer("competition-registration-backend/roster"),
		validator,
	)
	worker := service.NewRepairWorker(repairs, registrationRepo, engine, cfg.RepairInterval(), rosterMetrics)

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, repairs, Version)
	registrationHandler := handlers.NewRegistrationHandler(engine)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics and documentation
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRegistrationRoutes(
		router.Group("/api/v1", authMiddleware.RequireAuth()),
		registrationHandler,
		middleware.PerMinute(cfg.JoinRateLimitPerMin),
	)

	return router, worker, nil
}

// RegisterRegistrationRoutes mounts the registration and team endpoints on group
func RegisterRegistrationRoutes(group *gin.RouterGroup, h *handlers.RegistrationHandler, joinLimiter *middleware.IPRateLimiter) {
	events := group.Group("/events/:eventId")
	{
		events.POST("/registrations", h.CreateRegistration)
		events.POST("/disciplines/:discipline/sync", h.SyncTeam)
	}

	teams := group.Group("/teams")
	{
		teams.POST("/join", middleware.RateLimit(joinLimiter), h.JoinTeam)
		teams.GET("/:inviteCode", h.GetTeam)
	}

	registrations := group.Group("/registrations/:id")
	{
		registrations.DELETE("", h.LeaveRegistration)
		registrations.DELETE("/disciplines/:discipline/members/:memberId", h.RemoveMember)
	}
}
