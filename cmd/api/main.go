package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currency-wallet/config"
	"currency-wallet/internal/adapter/exchange"
	httpHandler "currency-wallet/internal/adapter/http/handler"
	"currency-wallet/internal/adapter/secrets"
	redisStorage "currency-wallet/internal/adapter/storage/redis"
	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/internal/service"
	"currency-wallet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
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
		Msg("Starting Currency Wallet")

	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	walletStore := redisStorage.NewWalletStore(rdb, cfg.Storage.WalletPrefix, log)
	userStore := redisStorage.NewUserStore(rdb, cfg.Storage.UserPrefix)

	// Resolve the JWT signing key through the secret provider
	secretProvider := secrets.NewFromConfig(cfg)
	jwtSecret, err := secretProvider.GetSecret(ctx, cfg.JWT.SecretName)
	if err != nil {
		log.Fatal().Err(err).Str("secret", cfg.JWT.SecretName).Msg("Failed to resolve JWT signing key")
	}

	// Initialize core services
	hashSvc := service.NewBcryptHashService()
	tokenSvc := service.NewJWTTokenService(jwtSecret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(userStore, hashSvc)

	// LOCAL runs provision a known user and wallet so the API is usable
	// out of the box. Deployed environments are seeded out-of-band.
	if cfg.IsLocal() {
		if err := seedLocalData(ctx, userStore, walletStore, hashSvc); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed local data")
		}
		log.Info().Msg("Local fixture data seeded")
	}

	// Initialize exchange rate providers
	nbpClient := exchange.NewNBPClient(cfg.Rates, &http.Client{Timeout: 10 * time.Second}, log)
	registry := exchange.NewRegistry(nbpClient)

	walletSvc := service.NewWalletService(walletStore, registry, log)

	// Initialize health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		WalletSvc:      walletSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisHealth},
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedLocalData provisions the development user and wallet when absent.
func seedLocalData(ctx context.Context, users ports.UserStore, wallets ports.WalletStore, hashSvc ports.HashService) error {
	const (
		username = "pjauvin"
		password = "supermariobros"
		userID   = "user-pjauvin"
	)

	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := hashSvc.Hash(password)
	if err != nil {
		return err
	}
	if err := users.CreateUser(ctx, &domain.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	return wallets.CreateWallet(ctx, &domain.Wallet{
		UserID: userID,
		Balances: map[domain.Currency]decimal.Decimal{
			domain.CurrencyJPY: decimal.NewFromInt(500),
			domain.CurrencyUSD: decimal.NewFromInt(10),
		},
		LocalCurrency: domain.LocalCurrencyPLN,
	})
}
