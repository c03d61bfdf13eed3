package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"equity-registry/config"
	httpHandler "equity-registry/internal/adapter/http/handler"
	pgStorage "equity-registry/internal/adapter/storage/postgres"
	redisStorage "equity-registry/internal/adapter/storage/redis"
	"equity-registry/internal/core/ports"
	"equity-registry/internal/service"
	"equity-registry/pkg/logger"
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
		Msg("Starting Equity Registry")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	registryRepo := pgStorage.NewRegistryRepo(pool)
	holderRepo := pgStorage.NewHolderRepo(pool)
	allowanceRepo := pgStorage.NewAllowanceRepo(pool)
	delegationRepo := pgStorage.NewDelegationRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	notifier := service.NewWebhookNotifier(
		cfg.Registry.WebhookURL,
		cfg.Registry.WebhookSecret,
		sigSvc,
		&http.Client{Timeout: 10 * time.Second},
		log,
	)

	// Initialize business services
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc)
	ledgerSvc := service.NewLedgerService(
		registryRepo,
		holderRepo,
		allowanceRepo,
		eventRepo,
		idempotencyCache,
		transactor,
		notifier,
		log,
	)
	votingSvc := service.NewVotingService(registryRepo, holderRepo, delegationRepo, transactor, log)
	rightsSvc := service.NewRightsService(votingSvc)
	registrySvc := service.NewRegistryService(registryRepo, holderRepo, eventRepo, transactor, notifier, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		VotingSvc:      votingSvc,
		RightsSvc:      rightsSvc,
		RegistrySvc:    registrySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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
