package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "mywallet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"mywallet/internal/auth"
	"mywallet/internal/cache"
	"mywallet/internal/config"
	"mywallet/internal/db"
	"mywallet/internal/handler"
	"mywallet/internal/model"
	"mywallet/internal/repository"
	"mywallet/internal/router"
	"mywallet/internal/service"
	"mywallet/pkg/logging"
)

// @title MyWallet API
// @version 1.0
// @description Personal finance wallet API with session-authenticated income/expense tracking.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	logging.Setup()
	cfg := config.Load()

	// Amounts and balances go out as JSON numbers, matching what the
	// wallet client has always parsed.
	decimal.MarshalJSONWithoutQuotes = true

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		slog.Error("database init", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		slog.Error("auto-migrate", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		slog.Error("redis init", "error", err)
		os.Exit(1)
	}

	// Initialize repositories and session registry
	userRepo := repository.NewUserRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)
	sessions := auth.NewRedisSessionRegistry(cacheClient, cfg.SessionTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions, cfg.BcryptCost)
	ledgerService := service.NewLedgerService(transactionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	transactionHandler := handler.NewTransactionHandler(ledgerService)
	sessionHandler := handler.NewSessionHandler(authService)

	// Register routes
	router.Register(e, cfg, sessions, authHandler, transactionHandler, sessionHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if err := cacheClient.Close(); err != nil {
		slog.Error("redis close", "error", err)
	}
	if err := db.Close(gormDB); err != nil {
		slog.Error("database close", "error", err)
	}
}
