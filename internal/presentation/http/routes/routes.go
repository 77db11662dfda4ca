package routes

import (
	"time"

	"github.com/fiadopro/fiado-api/internal/config"
	domainRepo "github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/internal/presentation/http/handler"
	"github.com/fiadopro/fiado-api/internal/presentation/http/middleware"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Business *handler.BusinessHandler
	Customer *handler.CustomerHandler
	Account  *handler.AccountHandler
	Payment  *handler.PaymentHandler
	Receipt  *handler.ReceiptHandler
	Audit    *handler.AuditHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-merchant rate limiter
		rateLimiter := middleware.NewMerchantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Business profile
	protected.GET("/business", h.Business.Get)
	protected.PUT("/business", h.Business.Save)

	// Customers (no delete: accounts reference them)
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
	}

	// Payments against an account require an idempotency key so retried
	// requests cannot double-charge a tab
	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Accounts (tabs)
	accounts := protected.Group("/accounts")
	{
		accounts.GET("", h.Account.Dashboard)
		accounts.POST("", h.Account.Create)
		accounts.GET("/deleted", h.Account.ListDeleted)
		accounts.GET("/:id", h.Account.Get)
		accounts.POST("/:id/items", h.Account.AddItem)
		accounts.DELETE("/:id/items/:item_id", h.Account.RemoveItem)
		accounts.POST("/:id/payments", idempotency, h.Payment.Record)
		accounts.DELETE("/:id/payments/:payment_id", h.Payment.Remove)
		accounts.GET("/:id/receipt", h.Receipt.AccountReceipt)
		accounts.POST("/:id/receipt/print", h.Receipt.PrintAccountReceipt)
		accounts.POST("/:id/delete", h.Account.Delete)
		accounts.POST("/:id/restore", h.Account.Restore)
	}

	// Payment receipts
	payments := protected.Group("/payments")
	{
		payments.GET("/:id/receipt", h.Receipt.PaymentReceipt)
		payments.POST("/:id/receipt/print", h.Receipt.PrintPaymentReceipt)
	}

	// Audit trail
	protected.GET("/audit", h.Audit.List)

	// Printer
	protected.GET("/printer/status", h.Receipt.PrinterStatus)
}
