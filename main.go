package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	c "github.com/okanay/backend-blog-core/configs"
	db "github.com/okanay/backend-blog-core/database"
	"github.com/okanay/backend-blog-core/events"
	"github.com/okanay/backend-blog-core/handlers"
	BlogHandler "github.com/okanay/backend-blog-core/handlers/blog"
	StaffHandler "github.com/okanay/backend-blog-core/handlers/staff"
	UserHandler "github.com/okanay/backend-blog-core/handlers/user"
	"github.com/okanay/backend-blog-core/logging"
	"github.com/okanay/backend-blog-core/middlewares"
	BlogRepository "github.com/okanay/backend-blog-core/repositories/blog"
	R2Repository "github.com/okanay/backend-blog-core/repositories/r2"
	UserRepository "github.com/okanay/backend-blog-core/repositories/user"
	"github.com/okanay/backend-blog-core/services"
	cache "github.com/okanay/backend-blog-core/services/cache"
)

func main() {
	// Environment Variables and Database Connection
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not loaded, using environment variables")
	}

	logger := logging.New(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	sqlDB, err := db.Init(context.Background(), os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Repository Initialization
	ur := UserRepository.NewRepository(sqlDB)
	br := BlogRepository.NewRepository(sqlDB)
	r2 := R2Repository.NewRepository(
		os.Getenv("R2_ACCESS_KEY_ID"),
		os.Getenv("R2_ACCESS_KEY_SECRET"),
		os.Getenv("R2_BUCKET_NAME"),
		os.Getenv("R2_FOLDER_NAME"),
		os.Getenv("R2_PUBLIC_URL"),
		os.Getenv("R2_ENDPOINT"),
	)

	// Event Producer Initialization
	producer := events.NewProducer(strings.Split(os.Getenv("KAFKA_BROKERS"), ","), c.EVENT_TOPIC)
	defer producer.Close()

	// Cache Initialization
	listCache := cache.NewCache(c.LIST_CACHE_EXPIRATION)
	loginCache := cache.NewCache(c.LOGIN_WINDOW)

	// Service Initialization
	session := services.NewSessionService(ur, logger)
	deleter := services.NewAccountDeletionCoordinator(ur, r2, producer, logger)
	staff := services.NewStaffLifecycle(ur, deleter, listCache, producer, logger)

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	uh := UserHandler.NewHandler(ur, session, deleter, r2)
	bh := BlogHandler.NewHandler(br, listCache, producer, logger)
	sh := StaffHandler.NewHandler(staff, listCache)

	// Router Initialize
	router := gin.Default()
	router.Use(c.CorsConfig())
	router.Use(c.SecureConfig)

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.NoRoute(mainHandler.NotFound)

	// Auth Routes
	loginLimiter := middlewares.NewLoginRateLimitMiddleware(loginCache)
	auth := router.Group("/auth")
	{
		auth.POST("/signup", uh.CreateNewUser)
		auth.POST("/login", loginLimiter.RateLimit(), uh.Login)
		auth.POST("/refresh", uh.Refresh)
		auth.POST("/logout", uh.Logout)

		gated := auth.Group("", middlewares.AuthMiddleware())
		{
			gated.GET("/me", uh.GetMe)
			gated.PATCH("/password", uh.UpdatePassword)
			gated.DELETE("/account", uh.DeleteAccount)
			gated.POST("/avatar", uh.RequestAvatarUpload)
			gated.POST("/avatar/confirm", uh.ConfirmAvatarUpload)
		}
	}

	// Blog Routes
	blog := router.Group("/blog")
	{
		blog.GET("/cards", bh.SelectBlogCards)
		blog.GET("/categories", bh.SelectAllCategories)
		blog.GET("/tags", bh.SelectAllTags)
		blog.GET("/:id", bh.SelectBlogByID)

		gated := blog.Group("", middlewares.AuthMiddleware())
		{
			gated.POST("", middlewares.PermissionMiddleware(c.PermissionCreatePost), bh.CreateBlogPost)
			gated.PATCH("", middlewares.PermissionMiddleware(c.PermissionEditPost), bh.UpdateBlogPost)
			gated.PATCH("/status", middlewares.PermissionMiddleware(c.PermissionEditPost), bh.UpdateBlogStatus)
			// The middleware only checks that the caller can delete posts at
			// all; the author-or-admin decision is the handler's.
			gated.DELETE("/:id", middlewares.PermissionMiddleware(c.PermissionDeletePost), bh.DeleteBlogByID)

			gated.POST("/categories", middlewares.PermissionMiddleware(c.PermissionEditPost), bh.CreateCategory)
			gated.POST("/tags", middlewares.PermissionMiddleware(c.PermissionEditPost), bh.CreateTag)
			gated.DELETE("/tags/:value", middlewares.PermissionMiddleware(c.PermissionManageStaff), bh.DeleteTag)
		}
	}

	// Staff Routes
	staffRoutes := router.Group("/staff", middlewares.AuthMiddleware(), middlewares.PermissionMiddleware(c.PermissionManageStaff))
	{
		staffRoutes.GET("", sh.List)
		staffRoutes.POST("/promote", sh.Promote)
		staffRoutes.PATCH("/role/:id", sh.UpdateRole)
		staffRoutes.DELETE("/:id", sh.Remove)
	}

	// Start Server
	err = router.Run(":" + os.Getenv("PORT"))
	if err != nil {
		logger.Error("error starting server", "error", err)
		os.Exit(1)
	}
}
