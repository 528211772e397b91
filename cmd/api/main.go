package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/config"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/handler"
	"github.com/finanzas-app/finanzas-backend/internal/messaging"
	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/repository/cache"
	"github.com/finanzas-app/finanzas-backend/internal/repository/postgres"
	"github.com/finanzas-app/finanzas-backend/internal/repository/storage"
	"github.com/finanzas-app/finanzas-backend/internal/repository/unavailable"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/finanzas-app/finanzas-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Finanzas API
// @version 1.0
// @description Income and expense tracking with categories, concepts, dashboards and xlsx reports.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Connect to database. Without one the server still starts and reports
	// storage as unavailable.
	pool := connectDatabase(ctx, cfg.Database)
	if pool != nil {
		defer pool.Close()
	}

	// Initialize repositories
	var (
		userRepo        domain.UserRepository        = unavailable.UserRepository{}
		categoryRepo    domain.CategoryRepository    = unavailable.CategoryRepository{}
		conceptRepo     domain.ConceptRepository     = unavailable.ConceptRepository{}
		transactionRepo domain.TransactionRepository = unavailable.TransactionRepository{}
	)
	if pool != nil {
		userRepo = postgres.NewUserRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		conceptRepo = postgres.NewConceptRepository(pool)
		transactionRepo = postgres.NewTransactionRepository(pool)
	}

	// Reference data cache
	if pool != nil && cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, reference data will not be cached")
		} else {
			defer redisClient.Close()
			categoryRepo = cache.NewCategoryRepository(categoryRepo, redisClient, cfg.ReferenceCacheTTL)
			conceptRepo = cache.NewConceptRepository(conceptRepo, redisClient, cfg.ReferenceCacheTTL)
			log.Info().Dur("ttl", cfg.ReferenceCacheTTL).Msg("Reference data cache enabled")
		}
	}

	// Change events
	hub := websocket.NewHub()
	publishers := websocket.FanoutPublisher{hub}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := messaging.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Warn().Err(err).Msg("AMQP unavailable, events are delivered over WebSocket only")
		} else {
			defer amqpPublisher.Close()
			publishers = append(publishers, amqpPublisher)
			log.Info().Str("exchange", cfg.AMQPExchange).Msg("Publishing events to AMQP")
		}
	}

	// Session tokens
	sessions, err := service.NewSessionManager(cfg.Session)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session manager")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Demo)
	transactionService := service.NewTransactionService(transactionRepo, conceptRepo)
	transactionService.SetEventPublisher(publishers)
	referenceService := service.NewReferenceService(categoryRepo, conceptRepo)
	dashboardService := service.NewDashboardService(transactionRepo)
	reportService := service.NewReportService(transactionRepo, referenceService)
	seedService := service.NewSeedService(categoryRepo, conceptRepo)
	seedService.SetEventPublisher(publishers)

	// Report archive
	if cfg.S3.Enabled() {
		archive, err := storage.NewS3ReportArchive(ctx, cfg.S3)
		if err != nil {
			log.Warn().Err(err).Msg("S3 unavailable, exported reports will not be archived")
		} else {
			reportService.SetArchive(archive)
			log.Info().Str("bucket", cfg.S3.Bucket).Msg("Archiving exported reports to S3")
		}
	}

	// Initialize auth middleware
	sessionAuth := middleware.NewSessionAuthMiddleware(cfg.Session.CookieName, sessions, authService)
	loginLimiter := middleware.NewRateLimiter(cfg.Demo.LoginRate, cfg.Demo.LoginBurst)
	defer loginLimiter.Stop()

	// Initialize handlers
	handlers := handler.Handlers{
		Auth:         handler.NewAuthHandler(authService, sessions, cfg.Session),
		Transactions: handler.NewTransactionHandler(transactionService),
		Reference:    handler.NewReferenceHandler(referenceService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Reports:      handler.NewReportHandler(reportService),
		Admin:        handler.NewAdminHandler(seedService),
		WebSocket:    handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, handler.HeaderReportArchiveKey},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		status := map[string]string{"status": "ok", "database": "ok"}
		if pool == nil {
			status["database"] = "unavailable"
		} else if err := pool.Ping(c.Request().Context()); err != nil {
			status["database"] = "unreachable"
		}
		return c.JSON(http.StatusOK, status)
	})

	// API documentation
	handler.RegisterDocs(e)

	// Register API routes
	handler.RegisterRoutes(e, sessionAuth, loginLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// connectDatabase opens the pool and applies migrations when configured.
// It returns nil when the database cannot be used.
func connectDatabase(ctx context.Context, dbCfg config.DatabaseConfig) *pgxpool.Pool {
	if err := dbCfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Database not configured, storage is unavailable")
		return nil
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database, storage is unavailable")
		return nil
	}
	log.Info().Msg("Connected to database")

	if dbCfg.MigrateOnStart {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations applied")
	}
	return pool
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
