package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"persona-emails/api"
	"persona-emails/auth"
	"persona-emails/contract"
	"persona-emails/infrastructure/cache"
	"persona-emails/infrastructure/grpc/client"
	"persona-emails/infrastructure/grpc/server"
	"persona-emails/internal"
	"persona-emails/observability"
	"persona-emails/repositories"
	"persona-emails/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Email server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves until a signal or a server failure,
// then releases resources through its defers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Embedded database, opened once and shared
	var db *badger.DB
	if config.NeedsBadger() {
		var err error
		db, err = badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
	}

	// 3. Email store
	var emailRepository repositories.IEmailRepository
	switch config.StoreDriver {
	case internal.StoreMongo:
		mongoClient, err := mongo.Connect(options.Client().ApplyURI(config.MongoConnectionString))
		if err != nil {
			return exitRuntime, fmt.Errorf("mongo connection failed: %w", err)
		}
		defer func() {
			logger.Info("Disconnecting from MongoDB...")
			_ = mongoClient.Disconnect(context.Background())
		}()
		collection := mongoClient.Database(config.MongoDB).Collection(config.EmailCollection)
		mongoRepository := repositories.NewMongoEmailRepository(collection, logger)
		if err := mongoRepository.EnsureIndexes(ctx); err != nil {
			logger.Warn("Failed to create email indexes", "error", err)
		}
		emailRepository = mongoRepository
	case internal.StoreBadger:
		emailRepository = repositories.NewEmailRepository(db, logger)
	}

	// 4. Persona directory
	directory, closeDirectory, err := buildDirectory(config, logger, db)
	if err != nil {
		return exitRuntime, err
	}
	defer closeDirectory()

	// 5. gRPC Server Setup
	verifier := auth.NewJWTVerifier(config.AuthTokenSecret, config.AuthTokenIssuer)
	resolver := auth.NewResolver(logger, verifier, config.StrictAuth)
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			observability.UnaryMetricsInterceptor(),
			auth.UnaryServerInterceptor(resolver),
		))
	emailService := services.NewEmailService(logger, emailRepository, directory)
	api.RegisterEmailServiceServer(s, server.NewEmailServer(logger, emailService))
	if config.DirectoryDriver == internal.DirectoryBadger {
		api.RegisterPersonaServiceServer(s, server.NewPersonaServer(repositories.NewPersonaRepository(db)))
	}

	errChan := make(chan error, 3)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	go func() {
		logger.Info("Starting gRPC server", "address", address, "store", config.StoreDriver,
			"directory", config.DirectoryDriver, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed service", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Metrics, health and store inspection
	router := observability.NewRouter(emailRepository)
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.MetricsPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting observability server", "address", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("observability server error: %w", err)
		}
	}()

	var debugServer *http.Server
	if config.DebugInspect && db != nil {
		debugRouter := chi.NewRouter()
		debugRouter.Get("/debug/inspect", internal.InspectHandler(db, resolver))
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("127.0.0.1:%d", config.DebugPort),
			Handler:           debugRouter,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Starting debug server", "address", debugServer.Addr)
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("debug server error: %w", err)
			}
		}()
	}

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		s.Stop()
		return exitRuntime, err
	}

	// 8. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
	if debugServer != nil {
		_ = debugServer.Shutdown(shutdownCtx)
	}
	s.GracefulStop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

// buildDirectory returns the persona directory, wrapped by the Redis cache when configured.
func buildDirectory(config internal.Config, logger *slog.Logger, db *badger.DB) (contract.IPersonaDirectory, func(), error) {
	var directory contract.IPersonaDirectory
	var closers []io.Closer

	switch config.DirectoryDriver {
	case internal.DirectoryGRPC:
		personaClient, conn, err := client.DialPersonaService(config.PersonaServiceAddr)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, conn)
		directory = personaClient
	case internal.DirectoryBadger:
		directory = repositories.NewPersonaRepository(db)
	}

	if config.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		closers = append(closers, redisClient)
		directory = cache.NewPersonaCache(logger, directory, redisClient, config.PersonaCacheTTL)
		logger.Info("Persona cache enabled", "addr", config.RedisAddr, "ttl", config.PersonaCacheTTL)
	}

	return directory, func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	opts := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		opts = opts.WithLoggingLevel(badger.DEBUG)
	} else {
		opts = opts.WithLoggingLevel(badger.WARNING)
	}

	return opts
}
