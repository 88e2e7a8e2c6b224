package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/stride-social/backend/internal/handlers"
	"github.com/stride-social/backend/internal/media"
	"github.com/stride-social/backend/internal/metrics"
	"github.com/stride-social/backend/internal/middleware"
	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/repositories"
	"github.com/stride-social/backend/internal/service"
	"github.com/stride-social/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil, in which case the local JWT middleware
// guards the API group instead.
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	pgdb *gorm.DB,
	mgClient *mongo.Client,
	firebaseAuthClient *auth.Client,
	storage media.Storage,
	log logrus.FieldLogger,
) error {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.Notification{}); err != nil {
		return err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize repositories ---
	mongoDB := mgClient.Database(cfg.MongoDatabase)
	userRepo := repositories.NewMongoUserRepository(mongoDB)
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Initialize services ---
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	notifier := service.NewNotifier(notificationRepo, collector, log)
	engagement := service.NewEngagementService(postRepo, userRepo, notifier, storage, collector, log)
	feed := service.NewFeedService(postRepo, userRepo, log)

	// --- Protected routes ---
	api := e.Group("/api/v1")
	if firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient, userRepo))
		log.Info("Firebase authentication middleware applied to /api/v1 group")
	} else {
		api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
		log.Info("JWT authentication middleware applied to /api/v1 group")
	}

	// Post routes
	postHandler := handlers.NewPostHandler(engagement)
	postHandler.RegisterPostRoutes(api)

	// Like routes
	likeHandler := handlers.NewLikeHandler(engagement)
	likeHandler.RegisterLikeRoutes(api)

	// Comment routes
	commentHandler := handlers.NewCommentHandler(engagement)
	commentHandler.RegisterCommentRoutes(api)

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feed)
	feedHandler.RegisterFeedRoutes(api)

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("all routes configured")
	return nil
}
