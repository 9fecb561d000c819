package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-user-identity/internal/handlers"
	"github.com/sbilibin2017/gw-user-identity/internal/jwt"
	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/metrics"
	"github.com/sbilibin2017/gw-user-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-user-identity/internal/password"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
	"github.com/sbilibin2017/gw-user-identity/internal/services"
)

const (
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
	shutdownTimeout = 10 * time.Second
)

// newServeCmd creates the serve command that runs the HTTP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
}

// withRetry retries fn with exponential backoff until it succeeds or the
// attempts run out.
func withRetry(ctx context.Context, what string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(connectAttempts, retry.NewExponential(connectBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			logger.Log.Warnw("connection attempt failed", "target", what, "err", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// connectPostgres opens the connection pool and waits until PostgreSQL answers.
func connectPostgres(ctx context.Context, cfg *config) (*sqlx.DB, error) {
	var db *sqlx.DB
	err := withRetry(ctx, "postgres", func(ctx context.Context) error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", cfg.postgresDSN())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	return db, nil
}

// connectRedis creates the Redis client and waits until Redis answers.
func connectRedis(ctx context.Context, cfg *config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	err := withRetry(ctx, "redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis connection error: %w", err)
	}
	return rdb, nil
}

// newKafkaWriter returns the event writer, or nil when no brokers are configured.
func newKafkaWriter(cfg *config) services.KafkaWriter {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires the handlers, middleware, metrics and swagger routes.
func newRouter(
	cfg *config,
	reg *prometheus.Registry,
	userService *services.UserService,
	tokenService *services.TokenService,
	networkService *services.NetworkService,
	deletionService *services.DeletionService,
	authService *services.AuthService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(userService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Protected routes, bearer JWT or API access token
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(authService))
		r.Get("/users/me", handlers.NewGetMeHandler(userService))
		r.Put("/users/me/password", handlers.NewChangePasswordHandler(userService))
		r.Delete("/users/me", handlers.NewDeleteMeHandler(deletionService))
		r.Get("/users/me/tokens", handlers.NewListTokensHandler(tokenService))
		r.Post("/users/me/tokens/{type}", handlers.NewIssueTokenHandler(tokenService))
		r.Delete("/users/me/tokens/{type}", handlers.NewExpireTokenHandler(tokenService))
		r.Get("/users/me/networks", handlers.NewListNetworksHandler(networkService))
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := connectPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Connect to Redis
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Kafka
	kafkaWriter := newKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer func() {
			if err := kafkaWriter.Close(); err != nil {
				logger.Log.Errorw("failed to close kafka writer", "err", err)
			}
		}()
	} else {
		logger.Log.Warnw("KAFKA_BROKERS not set, identity events are not published")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterMetrics(reg)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	userTypeRepo := repositories.NewUserTypeReadRepository(db)
	tokenReadRepo := repositories.NewAccessTokenReadRepository(db)
	tokenWriteRepo := repositories.NewAccessTokenWriteRepository(db, repositories.GetTxFromContext)
	tokenTypeRepo := repositories.NewAccessTokenTypeReadRepository(db)
	tokenCacheRepo := repositories.NewAccessTokenCacheRepository(rdb, time.Duration(cfg.TokenCacheTTLSecond)*time.Second)
	networkReadRepo := repositories.NewNetworkReadRepository(db)
	networkWriteRepo := repositories.NewNetworkWriteRepository(db, repositories.GetTxFromContext)
	txRunner := repositories.NewTxRunner(db)

	// Initialize JWT service
	jwtManager := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)
	hasher := password.New(cfg.BcryptCost)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, userTypeRepo, hasher, kafkaWriter)
	tokenService := services.NewTokenService(tokenReadRepo, tokenWriteRepo, tokenTypeRepo, tokenCacheRepo, kafkaWriter)
	networkService := services.NewNetworkService(networkReadRepo, networkWriteRepo)
	deletionService := services.NewDeletionService(
		txRunner, userWriteRepo, tokenWriteRepo, networkWriteRepo, tokenCacheRepo, kafkaWriter,
	)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, tokenService, networkService, jwtManager)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, reg,
			userService, tokenService, networkService, deletionService, authService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
