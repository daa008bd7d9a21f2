package router

import (
	"log"

	"github.com/anonto42/red-social/backend/internal/events"
	"github.com/anonto42/red-social/backend/internal/handlers"
	"github.com/anonto42/red-social/backend/internal/metrics"
	"github.com/anonto42/red-social/backend/internal/middleware"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/anonto42/red-social/backend/internal/views"
	"github.com/anonto42/red-social/backend/pkg/config"
	"github.com/anonto42/red-social/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Dependencies are the stores and sinks the routes are built on. Mongo and
// Redis are optional; without them posts and sessions live in DB.
type Dependencies struct {
	DB        *gorm.DB
	Mongo     *mongo.Database
	Redis     *redis.Client
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Config    *config.Config
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, m *metrics.Metrics) {
	config.SetupMiddleware(e)
	if m != nil {
		e.Use(m.Middleware())
	}
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Load()
	}

	if err := repositories.AutoMigrate(deps.DB); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(deps.DB)
	friendshipRepo := repositories.NewGormFriendshipRepository(deps.DB)
	followRepo := repositories.NewGormFollowRepository(deps.DB)
	notificationRepo := repositories.NewGormNotificationRepository(deps.DB)
	messageRepo := repositories.NewGormMessageRepository(deps.DB)
	guestbookRepo := repositories.NewGormGuestbookRepository(deps.DB)
	settingsRepo := repositories.NewGormSettingsRepository(deps.DB)
	visitRepo := repositories.NewGormVisitRepository(deps.DB)

	var postRepo repositories.PostRepository = repositories.NewGormPostRepository(deps.DB)
	if deps.Mongo != nil {
		postRepo = repositories.NewMongoPostRepository(deps.Mongo, userRepo)
		log.Println("Posts stored in MongoDB.")
	}

	var sessionRepo repositories.SessionRepository = repositories.NewGormSessionRepository(deps.DB)
	if deps.Redis != nil {
		sessionRepo = repositories.NewRedisSessionRepository(deps.Redis)
		log.Println("Sessions stored in Redis.")
	}

	var publisher events.Publisher = events.LogPublisher{}
	if deps.Publisher != nil {
		publisher = deps.Publisher
	}
	if deps.Metrics != nil {
		publisher = deps.Metrics.Publisher(publisher)
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo, cfg.SessionSecret, cfg.SessionTTL)
	relationshipService := services.NewRelationshipService(userRepo, friendshipRepo, followRepo, notificationRepo, settingsRepo, publisher)
	postService := services.NewPostService(postRepo, cfg.HomeFeedSize)
	messageService := services.NewMessageService(userRepo, friendshipRepo, settingsRepo, messageRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	guestbookService := services.NewGuestbookService(userRepo, friendshipRepo, settingsRepo, guestbookRepo)
	profileService := services.NewProfileService(userRepo, visitRepo, postService, guestbookService, relationshipService, settingsService, cfg.VisitDedupWindow)

	e.Use(middleware.LoadSession(authService))
	log.Println("Session middleware configured.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck(deps.DB))
	if deps.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))
	}

	// --- Public routes ---
	public := e.Group("")
	homeHandler := handlers.NewHomeHandler(postService, profileService, relationshipService, messageService)
	homeHandler.RegisterPublicRoutes(public)
	handlers.NewAuthHandler(authService).RegisterAuthRoutes(public)
	handlers.NewLinkHandler().RegisterLinkRoutes(public)
	log.Println("Public routes configured.")

	// --- Protected routes (require a session) ---
	app := e.Group("", middleware.RequireSession())

	homeHandler.RegisterHomeRoutes(app)
	log.Println("Feed routes configured.")

	handlers.NewUserHandler(profileService).RegisterProfileRoutes(app)
	log.Println("Profile routes configured.")

	handlers.NewFriendshipHandler(relationshipService, profileService).RegisterFriendshipRoutes(app)
	log.Println("Friendship routes configured.")

	handlers.NewFollowHandler(relationshipService).RegisterFollowRoutes(app)
	log.Println("Follow routes configured.")

	handlers.NewNotificationHandler(relationshipService).RegisterNotificationRoutes(app)
	log.Println("Notification routes configured.")

	handlers.NewMessageHandler(messageService, relationshipService).RegisterMessageRoutes(app)
	log.Println("Message routes configured.")

	handlers.NewGuestbookHandler(guestbookService, profileService).RegisterGuestbookRoutes(app)
	log.Println("Guestbook routes configured.")

	handlers.NewSettingsHandler(settingsService).RegisterSettingsRoutes(app)
	log.Println("Settings routes configured.")

	// A group with middleware registers catch-all 404 routes that run that
	// middleware. Replace them so unknown paths answer 404 instead of a login redirect.
	e.RouteNotFound("/", echo.NotFoundHandler)
	e.RouteNotFound("/*", echo.NotFoundHandler)

	log.Println("All routes configured.")
}
