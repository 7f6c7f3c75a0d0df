package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/finai/finai-web/internal/config"
	"github.com/dafibh/finai/finai-web/internal/handler"
	"github.com/dafibh/finai/finai-web/internal/middleware"
	"github.com/dafibh/finai/finai-web/internal/repository/httpapi"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/session"
	"github.com/dafibh/finai/finai-web/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

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

	// Finance API client and repositories
	client := httpapi.NewClient(cfg.APIBaseURL, nil, log.Logger)
	summaryRepo := httpapi.NewSummaryRepository(client)
	transactionRepo := httpapi.NewTransactionRepository(client)
	billRepo := httpapi.NewBillRepository(client)
	goalRepo := httpapi.NewGoalRepository(client)
	learningRepo := httpapi.NewLearningRepository(client)
	log.Info().Str("api_base_url", cfg.APIBaseURL).Msg("Finance API configured")

	// Initialize services
	dashboardService := service.NewDashboardService(summaryRepo, transactionRepo, log.Logger)
	transactionsService := service.NewTransactionsService(transactionRepo, cfg.Location(), log.Logger)
	billsService := service.NewBillsService(billRepo, time.Now, log.Logger)
	goalsService := service.NewGoalsService(goalRepo, log.Logger)
	learningService := service.NewLearningService(learningRepo, log.Logger)
	advisorService := service.NewAdvisorService(log.Logger)

	// Sessions, limits and the advisor hub
	store := session.NewStore(cfg.SessionTTL)
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	hub := websocket.NewHub()

	renderer, err := handler.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Transactions: handler.NewTransactionHandler(transactionsService, cfg.Chart.Width, cfg.Chart.Height),
		Bills:        handler.NewBillHandler(billsService),
		Goals:        handler.NewGoalHandler(goalsService),
		Learning:     handler.NewLearningHandler(learningService),
		Advisor:      handler.NewAdvisorHandler(advisorService, hub),
		WebSocket:    handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers; learning images may come from any https host
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' https: data:; connect-src 'self' ws: wss:",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	handler.RegisterRoutes(e, handlers,
		middleware.SessionMiddleware(store, cfg.SessionTTL),
		middleware.RateLimitMiddleware(rateLimiter),
	)

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	store.Stop()
	rateLimiter.Stop()

	log.Info().Msg("Server exited")
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
				event = log.Error().Err(err)
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
