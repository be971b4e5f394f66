package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/fintrackhq/fintrack-server/internal/domain/usecase/auth"
	ledgerUseCase "github.com/fintrackhq/fintrack-server/internal/domain/usecase/ledger"

	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/handler"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/routes"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/database"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/database/migration"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/logger"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/time"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	sequenceRepo := repository.NewSequenceRepository(dbManager.DB(), appLogger)
	balanceRepo := repository.NewBalanceRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	expenseRepo := repository.NewExpenseRepository(dbManager.DB(), appLogger)
	savingsRepo := repository.NewSavingsRepository(dbManager.DB(), appLogger)
	accountRepo := repository.NewAccountRepository(dbManager.DB(), appLogger)

	// Initialize use cases
	tokenService := authUseCase.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, tp)
	authService := authUseCase.NewService(
		userRepo,
		sequenceRepo,
		tokenService,
		cfg.Sequence.UserIDStart,
		tp,
		appLogger,
	)
	ledgerService := ledgerUseCase.NewService(
		balanceRepo,
		transactionRepo,
		expenseRepo,
		savingsRepo,
		accountRepo,
		sequenceRepo,
		tp,
		appLogger,
	)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	balanceHandler := handler.NewBalanceHandler(ledgerService, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	expenseHandler := handler.NewExpenseHandler(ledgerService, appLogger)
	savingsHandler := handler.NewSavingsHandler(ledgerService, appLogger)
	accountHandler := handler.NewAccountHandler(ledgerService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(
		router,
		tokenService,
		authHandler,
		balanceHandler,
		transactionHandler,
		expenseHandler,
		savingsHandler,
		accountHandler,
		appLogger,
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":        cfg.Server.Port,
			"environment": cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or FT_DB_HOST environment variable)")
	}

	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or FT_DB_USERNAME environment variable)")
	}

	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or FT_DB_PASSWORD environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or FT_DB_NAME environment variable)")
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// The signing secret never has a default. Refusing to boot without it
	// beats issuing tokens anyone can forge.
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or FT_JWT_SECRET environment variable)")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	if cfg.Sequence.UserIDStart == 0 {
		missingConfigs = append(missingConfigs, "sequence.userIdStart")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
