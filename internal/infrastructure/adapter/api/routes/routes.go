package routes

import (
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/handler"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	verifier usecase.TokenVerifier,
	authHandler *handler.AuthHandler,
	balanceHandler *handler.BalanceHandler,
	transactionHandler *handler.TransactionHandler,
	expenseHandler *handler.ExpenseHandler,
	savingsHandler *handler.SavingsHandler,
	accountHandler *handler.AccountHandler,
	logger coreport.Logger,
) {
	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// Everything below requires a verified bearer token
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(verifier, logger))
	{
		protected.GET("/balance", balanceHandler.Get)
		protected.POST("/balance", balanceHandler.Put)

		protected.GET("/transactions", transactionHandler.List)
		protected.POST("/transaction", transactionHandler.Create)

		protected.GET("/expenses", expenseHandler.List)
		protected.POST("/expense", expenseHandler.Create)

		protected.GET("/savings", savingsHandler.List)
		protected.POST("/savings", savingsHandler.Create)
		protected.PATCH("/savings", savingsHandler.Update)
		protected.DELETE("/savings", savingsHandler.Delete)

		protected.GET("/digital-accounts", accountHandler.List)
		protected.POST("/digital-account", accountHandler.Create)
		protected.PUT("/digital-account/:accountId", accountHandler.Update)
		protected.DELETE("/digital-account/:accountId", accountHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
