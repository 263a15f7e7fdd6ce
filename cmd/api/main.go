package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clever-bank/config"
	httpHandler "clever-bank/internal/adapter/http/handler"
	pgStorage "clever-bank/internal/adapter/storage/postgres"
	redisStorage "clever-bank/internal/adapter/storage/redis"
	"clever-bank/internal/core/ports"
	"clever-bank/internal/receipt"
	"clever-bank/internal/service"
	"clever-bank/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Clever-Bank ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	bankRepo := pgStorage.NewBankRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Load entity caches. The process serves reads from memory, so a failed
	// load is fatal.
	accounts := service.NewAccountCache(accountRepo)
	banks := service.NewBankCache(bankRepo)
	users := service.NewUserCache(userRepo)
	txLog := service.NewTransactionCache(txRepo)
	for name, c := range map[string]interface{ Load(context.Context) error }{
		"accounts":     accounts,
		"banks":        banks,
		"users":        users,
		"transactions": txLog,
	} {
		if err := c.Load(ctx); err != nil {
			log.Fatal().Err(err).Str("cache", name).Msg("Failed to load entity cache")
		}
	}
	log.Info().
		Int("accounts", len(accounts.FindAll())).
		Int("banks", len(banks.FindAll())).
		Int("users", len(users.FindAll())).
		Int("transactions", len(txLog.FindAll())).
		Msg("Entity caches loaded")

	// Receipt sinks: local printer always, Redis stream when configured.
	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}
	sinks := receipt.Fanout{receipt.NewPrinter(cfg.Statement.ReceiptDir, accounts, banks, log)}
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sinks = append(sinks, redisStorage.NewReceiptStream(rdb))
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis receipt stream enabled")
	}

	// Initialize business services
	ledgerSvc := service.NewLedgerService(accounts, txLog, accountRepo, txRepo, transactor, sinks, log)
	statementSvc := service.NewStatementService(accounts, users, txLog, ledgerSvc, cfg.Statement.StatementDir, log)

	// Start monthly interest accrual
	accrualCtx, stopAccrual := context.WithCancel(ctx)
	defer stopAccrual()
	scheduler := service.NewAccrualScheduler(accounts, ledgerSvc, cfg.Accrual, log)
	go scheduler.Run(accrualCtx)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Accounts:       accounts,
		Banks:          banks,
		Users:          users,
		Transactions:   txLog,
		LedgerSvc:      ledgerSvc,
		StatementSvc:   statementSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopAccrual()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
