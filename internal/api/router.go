package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/unistay/rental-platform/docs"
	"github.com/unistay/rental-platform/internal/api/handler"
	"github.com/unistay/rental-platform/internal/api/middleware"
	"github.com/unistay/rental-platform/internal/core/domain"
	"github.com/unistay/rental-platform/internal/core/ports"
	"github.com/unistay/rental-platform/internal/core/service"
	mongodb "github.com/unistay/rental-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/unistay/rental-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, events ports.EventSink, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	locker := redisdb.NewPropertyLocker(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	propertyService := service.NewPropertyService(propertyRepo, log)
	bookingService := service.NewBookingService(bookingRepo, propertyRepo, locker, events, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authenticated := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)

	// --- Owner routes: must be logged in and an owner ---
	owner := e.Group("/api/owner", authenticated, middleware.RBAC(domain.RoleOwner))
	owner.GET("/properties/count", propertyHandler.Count)
	owner.GET("/:ownerId/properties", propertyHandler.List)
	owner.POST("/:ownerId/properties", propertyHandler.Create)
	owner.PUT("/:ownerId/properties/:propertyId", propertyHandler.Update)
	owner.DELETE("/:ownerId/properties/:propertyId", propertyHandler.Delete)
	owner.GET("/:ownerId/properties/:propertyId/bookings", bookingHandler.ListForProperty)

	// --- Booking routes ---
	student := e.Group("/api/bookings", authenticated, middleware.RBAC(domain.RoleStudent))
	student.POST("", bookingHandler.Create)
	student.GET("", bookingHandler.ListMine)

	// Transitions are open to any authenticated role; the state machine
	// decides who may apply which transition.
	e.PATCH("/api/bookings/:bookingId/status", bookingHandler.Transition, authenticated)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
