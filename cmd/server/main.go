package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"learning-app-backend/internal/config"
	"learning-app-backend/internal/database"
	"learning-app-backend/internal/handler"
	"learning-app-backend/internal/mailer"
	"learning-app-backend/internal/middleware"
	"learning-app-backend/internal/repository"
	"learning-app-backend/internal/service"
	"learning-app-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)

	// 5. Initialize services
	confirmationMailer := mailer.New(cfg.SMTP)
	authenticator := service.NewPasswordAuthenticator(userRepo)
	authService := service.NewAuthService(userRepo, tokenRepo, auditRepo, confirmationMailer, authenticator)
	catalogService := service.NewCatalogService(catalogRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, "healthy", gin.H{
			"service": "learning-app-backend",
		})
	})

	api := r.Group("/api/v1/auth")
	{
		// Account and session lifecycle (public)
		api.GET("/check-server-connection", authHandler.CheckServerConnection)
		api.POST("/check-enabled-account", authHandler.CheckEnabledAccount)
		api.POST("/create-account", authHandler.CreateAccount)
		api.GET("/confirm-account", authHandler.ConfirmAccount)
		api.POST("/resend-confirmation-email", authHandler.ResendConfirmationEmail)
		api.POST("/login-account", authHandler.LoginAccount)
		api.POST("/verify-token", authHandler.VerifyToken)
		api.POST("/logout-account", authHandler.LogoutAccount)

		// Catalog lookups (require a bearer token)
		catalog := api.Group("")
		catalog.Use(middleware.AuthMiddleware())
		{
			catalog.GET("/words", catalogHandler.GetWords)
			catalog.GET("/questions", catalogHandler.GetQuestions)
			catalog.GET("/categories", catalogHandler.GetCategories)
			catalog.GET("/subcategory/:categoryId", catalogHandler.GetSubcategories)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
