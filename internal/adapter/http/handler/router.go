package handler

import (
	"clever-bank/internal/adapter/http/middleware"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Accounts       *cache.Cache[domain.Account]
	Banks          *cache.Cache[domain.Bank]
	Users          *cache.Cache[domain.User]
	Transactions   *cache.Cache[domain.Transaction]
	LedgerSvc      ports.LedgerService
	StatementSvc   ports.StatementService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifying PostgreSQL and Redis when configured.
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.Accounts)
	accounts := v1.Group("/accounts")
	{
		accounts.GET("", accountHandler.List)
		accounts.GET("/:id", accountHandler.Get)
		accounts.POST("", accountHandler.Create)
		accounts.PUT("/:id", accountHandler.Update)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	bankHandler := NewBankHandler(deps.Banks)
	banks := v1.Group("/banks")
	{
		banks.GET("", bankHandler.List)
		banks.GET("/:id", bankHandler.Get)
		banks.POST("", bankHandler.Create)
		banks.PUT("/:id", bankHandler.Update)
		banks.DELETE("/:id", bankHandler.Delete)
	}

	userHandler := NewUserHandler(deps.Users)
	users := v1.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	transactionHandler := NewTransactionHandler(deps.Transactions)
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", transactionHandler.List)
		transactions.GET("/:id", transactionHandler.Get)
		transactions.PATCH("/:id/date", transactionHandler.UpdateDate)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := v1.Group("/ledger")
	{
		ledger.POST("/transfer", ledgerHandler.Transfer)
		ledger.POST("/withdraw", ledgerHandler.Withdraw)
		ledger.POST("/refill", ledgerHandler.Refill)
		ledger.GET("/accounts/:id/income", ledgerHandler.Income)
		ledger.GET("/accounts/:id/outgo", ledgerHandler.Outgo)
	}

	if deps.StatementSvc != nil {
		statementHandler := NewStatementHandler(deps.StatementSvc)
		statements := v1.Group("/statements")
		{
			statements.GET("/money/:id", statementHandler.Money)
			statements.GET("/account/:id", statementHandler.Account)
		}
	}

	return r
}
