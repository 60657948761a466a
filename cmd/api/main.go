package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moneytalk/internal/config"
	"moneytalk/internal/database"
	"moneytalk/internal/handlers"
	"moneytalk/internal/middleware"
	"moneytalk/internal/repositories"
	"moneytalk/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	recurringRepo := repositories.NewRecurringRuleRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	aggregationService := services.NewAggregationService(transactionRepo, budgetRepo, metrics)
	commandService := services.NewCommandService(transactionRepo, aggregationService, metrics, cfg.Ledger)
	recurrenceService := services.NewRecurrenceService(recurringRepo, metrics)
	advisorService := services.NewAdvisorService(cfg.Advisor, metrics)
	seedService := services.NewSeedService(transactionRepo, metrics)

	// Handlers
	commandHandler := handlers.NewCommandHandler(commandService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	recurringHandler := handlers.NewRecurringHandler(recurringRepo, recurrenceService)
	trendsHandler := handlers.NewTrendsHandler(aggregationService, cfg.Ledger)
	advisorHandler := handlers.NewAdvisorHandler(advisorService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	devHandler := handlers.NewDevHandler(seedService, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.Logger())

	// Operational endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.POST("/command", commandHandler.Interpret)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.EditTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/budgets", budgetHandler.ListBudgets)
	api.POST("/budgets", budgetHandler.UpsertBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)

	api.GET("/recurring", recurringHandler.ListRules)
	api.POST("/recurring", recurringHandler.CreateRule)
	api.DELETE("/recurring/:id", recurringHandler.DeleteRule)
	api.POST("/recurring/run", recurringHandler.RunDue)

	api.GET("/summary", trendsHandler.GetSummary)
	api.GET("/trends", trendsHandler.GetTrends)

	api.POST("/ask", advisorHandler.Ask)

	api.POST("/dev/seed", devHandler.SeedLedger)

	// Hourly background pass keeps recurring rules current even if nobody
	// hits /recurring/run
	stopRecurring := startRecurringLoop(recurrenceService)
	defer close(stopRecurring)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}

func startRecurringLoop(recurrence services.RecurrenceServiceInterface) chan struct{} {
	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := recurrence.RunDue(time.Now()); err != nil {
					slog.Error("recurring pass failed", "error", err)
				}
			case <-stop:
				return
			}
		}
	}()

	return stop
}
