package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tourbook/internal/database"
	"tourbook/internal/middleware"
	"tourbook/internal/modules/announcement"
	"tourbook/internal/modules/auth"
	"tourbook/internal/modules/booking"
	"tourbook/internal/modules/catalog"
	"tourbook/internal/modules/chat"
	"tourbook/internal/modules/refund"
	"tourbook/internal/modules/review"
	"tourbook/internal/modules/settings"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/logger"
	"tourbook/internal/policy"
	"tourbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.Init(logger.Config{
		Level:    envOr("LOG_LEVEL", "info"),
		Format:   envOr("LOG_FORMAT", "json"),
		FilePath: os.Getenv("LOG_FILE"),
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	chatRepo := repository.NewChatRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(packageRepo, settingsService)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, packageRepo, settingsService)
	bookingHandler := booking.NewHandler(bookingService)

	// No payment gateway wired yet; refunds are settled manually and only
	// marked processed here.
	refundService := refund.NewService(bookingRepo, settingsService, nil)
	refundHandler := refund.NewHandler(refundService)

	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	announcementService := announcement.NewService(announcementRepo)
	announcementHandler := announcement.NewHandler(announcementService)

	hub := chat.NewHub()
	defer hub.Close()
	chatService := chat.NewService(chatRepo, userRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub)

	if envOr("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			announcementHandler.RegisterActiveRoute(protected)

			operator := protected.Group("/")
			operator.Use(middleware.OperatorOrAdmin())
			{
				catalogHandler.RegisterRoutes(operator)
				bookingHandler.RegisterRoutes(operator)
			}

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				settingsGroup := admin.Group("/")
				settingsGroup.Use(middleware.Permission(settingsService, policy.ActionManageSettings))
				settingsHandler.RegisterRoutes(settingsGroup)

				refundGroup := admin.Group("/")
				refundGroup.Use(middleware.Permission(settingsService, policy.ActionProcessRefunds))
				refundHandler.RegisterRoutes(refundGroup)

				reviewGroup := admin.Group("/")
				reviewGroup.Use(middleware.Permission(settingsService, policy.ActionModerateReviews))
				reviewHandler.RegisterRoutes(reviewGroup)

				announcementGroup := admin.Group("/")
				announcementGroup.Use(middleware.Permission(settingsService, policy.ActionSendAnnouncements))
				announcementHandler.RegisterRoutes(announcementGroup)

				userGroup := admin.Group("/")
				userGroup.Use(middleware.Permission(settingsService, policy.ActionManageUsers))
				authHandler.RegisterUserManagementRoutes(userGroup)
			}
		}
	}

	addr := ":" + envOr("PORT", "8080")
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
