package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"financas/internal/api"
	"financas/internal/api/handlers"
	"financas/internal/repository"
	"financas/internal/service"
	"financas/pkg/auth"
	"financas/pkg/config"
	"financas/pkg/logger"
	"financas/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Financas service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	catRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	goalRepo := repository.NewSavingsGoalRepository(db, appLogger)
	invRepo := repository.NewInvestmentRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, &cfg.Google, appLogger)
	categoryService := service.NewCategoryService(catRepo, appLogger)
	transactionService := service.NewTransactionService(txRepo, catRepo, appLogger)
	summaryService := service.NewSummaryService(txRepo, appLogger)
	healthService := service.NewHealthService(txRepo, goalRepo, invRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)
	investmentService := service.NewInvestmentService(invRepo, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	stockService := service.NewStockService(cfg.Stocks, appLogger)
	chatService := service.NewChatService(cfg.AI, appLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, jwtManager, &cfg.Server, appLogger),
		Transaction: handlers.NewTransactionHandler(transactionService, categoryService, appLogger),
		Summary:     handlers.NewSummaryHandler(summaryService, healthService, appLogger),
		Goal:        handlers.NewGoalHandler(goalService, appLogger),
		Investment:  handlers.NewInvestmentHandler(investmentService, appLogger),
		Settings:    handlers.NewSettingsHandler(settingsService, appLogger),
		Stock:       handlers.NewStockHandler(stockService, appLogger),
		Chat:        handlers.NewChatHandler(chatService, appLogger),
		Public:      handlers.NewPublicHandler(summaryService, goalService, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
