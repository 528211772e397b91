package handler

import (
	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler registered under /api/v1
type Handlers struct {
	Auth         *AuthHandler
	Transactions *TransactionHandler
	Reference    *ReferenceHandler
	Dashboard    *DashboardHandler
	Reports      *ReportHandler
	Admin        *AdminHandler
	WebSocket    *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, sessionAuth *middleware.SessionAuthMiddleware, loginLimiter *middleware.RateLimiter, h Handlers) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.POST("/demo-login", h.Auth.DemoLogin, middleware.RateLimitByIP(loginLimiter))
	auth.GET("/me", h.Auth.Me, sessionAuth.Optional())
	auth.POST("/logout", h.Auth.Logout)

	requireSession := sessionAuth.Authenticate()

	// Transaction routes (protected)
	transactions := api.Group("/transactions")
	transactions.Use(requireSession)
	transactions.GET("", h.Transactions.GetTransactions)
	transactions.POST("", h.Transactions.CreateTransaction)
	transactions.GET("/:id", h.Transactions.GetTransaction)
	transactions.PATCH("/:id", h.Transactions.UpdateTransaction)
	transactions.DELETE("/:id", h.Transactions.DeleteTransaction)

	// Category routes (protected)
	categories := api.Group("/categories")
	categories.Use(requireSession)
	categories.GET("", h.Reference.GetCategories)
	categories.GET("/:id", h.Reference.GetCategory)

	// Concept routes (protected)
	concepts := api.Group("/concepts")
	concepts.Use(requireSession)
	concepts.GET("", h.Reference.GetConcepts)
	concepts.GET("/:id", h.Reference.GetConcept)

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard")
	dashboard.Use(requireSession)
	dashboard.GET("/summary", h.Dashboard.GetSummary)

	// Report routes (protected)
	reports := api.Group("/reports")
	reports.Use(requireSession)
	reports.GET("/summary", h.Reports.GetSummary)
	reports.GET("/export", h.Reports.Export)

	// Admin routes (protected, admin role)
	admin := api.Group("/admin")
	admin.Use(requireSession, middleware.RequireAdmin())
	admin.POST("/seed", h.Admin.Seed)

	// Change events (protected)
	if h.WebSocket != nil {
		api.GET("/ws", h.WebSocket.HandleWS, requireSession)
	}
}
