package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bms-ph/records-system/internal/api/handler"
	"github.com/bms-ph/records-system/internal/api/middleware"
	"github.com/bms-ph/records-system/internal/core/domain"
	"github.com/bms-ph/records-system/internal/core/ports"
	"github.com/bms-ph/records-system/internal/core/service"
	"github.com/bms-ph/records-system/internal/infrastructure/config"
	mongodb "github.com/bms-ph/records-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bms-ph/records-system/internal/infrastructure/db/redis"
	"github.com/bms-ph/records-system/internal/infrastructure/http/handlers"
	"github.com/bms-ph/records-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// lastSeen may be nil to disable activity stamping.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, lastSeen *queue.LastSeenRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("records"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	barangayRepo := mongodb.NewBarangayRepository(db)
	residentRepo := mongodb.NewResidentRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	documentRequestRepo := mongodb.NewDocumentRequestRepository(db)
	refreshStore := redisdb.NewRefreshTokenStore(rdb)

	// typed-nil guard: a nil *LastSeenRecorder must not become a non-nil interface
	var recorder ports.LastSeenRecorder
	if lastSeen != nil {
		recorder = lastSeen
	}

	identityService := service.NewIdentityService(userRepo, cfg.JWTSecret, recorder)
	authService := service.NewAuthService(userRepo, refreshStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log)
	residentService := service.NewResidentService(residentRepo, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	documentRequestService := service.NewDocumentRequestService(documentRequestRepo, log)
	barangayService := service.NewBarangayService(barangayRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	residentHandler := handler.NewResidentHandler(residentService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	documentRequestHandler := handler.NewDocumentRequestHandler(documentRequestService)
	barangayHandler := handler.NewBarangayHandler(barangayService)

	auth := middleware.Auth(identityService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, auth)
	e.POST("/auth/register", authHandler.Register, auth, middleware.RequireMinimumRole(domain.RoleAdmin))

	// --- Tenant-scoped records ---
	v1 := e.Group("/v1", auth)

	residents := v1.Group("/residents")
	residents.GET("", residentHandler.List, middleware.RequirePermission(domain.ModuleResidents, domain.ActionView))
	residents.POST("", residentHandler.Create, middleware.RequirePermission(domain.ModuleResidents, domain.ActionCreate))
	residents.GET("/:id", residentHandler.Get, middleware.RequirePermission(domain.ModuleResidents, domain.ActionView))
	residents.PUT("/:id", residentHandler.Update, middleware.RequirePermission(domain.ModuleResidents, domain.ActionEdit))
	residents.DELETE("/:id", residentHandler.Delete, middleware.RequirePermission(domain.ModuleResidents, domain.ActionDelete))

	announcements := v1.Group("/announcements")
	announcements.GET("", announcementHandler.List, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionView))
	announcements.POST("", announcementHandler.Create, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionCreate))
	announcements.GET("/:id", announcementHandler.Get, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionView))
	announcements.DELETE("/:id", announcementHandler.Delete, middleware.RequirePermission(domain.ModuleAnnouncements, domain.ActionDelete))

	documentRequests := v1.Group("/document-requests")
	documentRequests.GET("", documentRequestHandler.List, middleware.RequirePermission(domain.ModuleDocumentRequests, domain.ActionView))
	documentRequests.POST("", documentRequestHandler.Create, middleware.RequirePermission(domain.ModuleDocumentRequests, domain.ActionCreate))
	documentRequests.GET("/:id", documentRequestHandler.Get, middleware.RequirePermission(domain.ModuleDocumentRequests, domain.ActionView))
	documentRequests.PATCH("/:id/status", documentRequestHandler.Advance, middleware.RequirePermission(domain.ModuleDocumentRequests, domain.ActionEdit))

	// --- Tenant administration (unrestricted super_admin only) ---
	// a super_admin bound to a barangay is a scoped principal and stops here
	barangays := v1.Group("/barangays", middleware.RequireRoles(domain.RoleSuperAdmin), middleware.RequireUnrestrictedScope())
	barangays.GET("", barangayHandler.List)
	barangays.POST("", barangayHandler.Create)
	barangays.PATCH("/:id/active", barangayHandler.SetActive)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
