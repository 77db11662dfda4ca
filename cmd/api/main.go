package main

import (
	"log"
	"os"

	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/config"
	"github.com/fiadopro/fiado-api/internal/infrastructure/database"
	"github.com/fiadopro/fiado-api/internal/infrastructure/repository"
	"github.com/fiadopro/fiado-api/internal/presentation/http/handler"
	"github.com/fiadopro/fiado-api/internal/presentation/http/routes"
	"github.com/fiadopro/fiado-api/pkg/oauth"
	"github.com/fiadopro/fiado-api/pkg/printer"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin merchant when configured
	if err := database.SeedAdminUser(db); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	businessService := service.NewBusinessService(businessRepo)
	customerService := service.NewCustomerService(customerRepo)
	accountService := service.NewAccountService(accountRepo, customerRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, accountRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(thermalPrinter, accountRepo, paymentRepo, businessRepo, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, auditService),
		Business: handler.NewBusinessHandler(businessService),
		Customer: handler.NewCustomerHandler(customerService),
		Account:  handler.NewAccountHandler(accountService, auditService),
		Payment:  handler.NewPaymentHandler(paymentService, auditService),
		Receipt:  handler.NewReceiptHandler(receiptService, auditService),
		Audit:    handler.NewAuditHandler(auditService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
