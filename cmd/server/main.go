package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/handler"
	postgresRepo "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/repository/postgres"
	redisRepo "github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/repository/redis"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/config"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/logger"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/metrics"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/postgres"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/infrastructure/redis"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	debtRepo := postgresRepo.NewDebtRepository(pool)
	retrier := postgresRepo.NewRetrier(log.Logger)
	idGen := postgresRepo.NewULIDGenerator()
	rulesStore := redisRepo.NewRulesStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	debtUC := usecase.NewDebtUseCase(debtRepo, idGen)
	paymentUC := usecase.NewPaymentUseCase(txManager, debtRepo, idGen, retrier, cache)
	rulesUC := usecase.NewRulesUseCase(rulesStore)
	scoreUC := usecase.NewScoreUseCase(debtRepo, rulesUC, cache)

	// Initialize handlers
	m := metrics.New()
	debtHandler := handler.NewDebtHandler(debtUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC, m)
	scoreHandler := handler.NewScoreHandler(scoreUC, m)
	rulesHandler := handler.NewRulesHandler(rulesUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DebtHandler:      debtHandler,
		PaymentHandler:   paymentHandler,
		ScoreHandler:     scoreHandler,
		RulesHandler:     rulesHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
