// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	taskv1 "github.com/daybook-app/daybook/api/proto/task/v1/generated"
	"github.com/daybook-app/daybook/ent/generated/migrate"
	"github.com/daybook-app/daybook/internal/cache"
	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/database"
	"github.com/daybook-app/daybook/internal/filter"
	"github.com/daybook-app/daybook/internal/middleware"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/repository"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/timezone"
	"github.com/daybook-app/daybook/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("connecting to PostgreSQL",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName))
	clients, err := database.NewClients(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := clients.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := runAutoMigration(context.Background(), clients, logger); err != nil {
		logger.Fatal("failed to run auto migration", zap.Error(err))
	}

	// Cache backends: Redis when configured, otherwise in-process.
	var (
		zoneCache  cache.TTL[string]
		countCache cache.TTL[models.Counts]
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("using Redis caches", zap.String("addr", cfg.Redis.Addr))
		zoneCache = cache.NewRedis[string](rdb, "daybook:")
		countCache = cache.NewRedis[models.Counts](rdb, "daybook:")
	} else {
		zoneCache = cache.NewMemory[string]()
		countCache = cache.NewMemory[models.Counts]()
	}

	taskRepo := repository.NewTaskRepository(clients.Ent, clients.DB)
	prefRepo := repository.NewPreferenceRepository(clients.Ent)

	resolver := timezone.NewResolver(prefRepo, zoneCache, cfg.Filter.TimezoneCacheTTL, logger)
	engine := filter.NewEngine(taskRepo, resolver, prefRepo, cfg.Filter.DefaultRetentionDays, nil, logger)
	aggregator := filter.NewCountAggregator(taskRepo, resolver, prefRepo, countCache, cfg.Filter.CountCacheTTL, cfg.Filter.DefaultRetentionDays, nil, logger)

	taskService := service.NewTaskService(taskRepo, engine, aggregator, resolver, nil, logger)
	preferenceService := service.NewPreferenceService(prefRepo, resolver, logger)

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenDuration)
	authInterceptor := middleware.NewAuthInterceptor(tokenManager)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			authInterceptor.Unary(),
			loggingInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			authInterceptor.Stream(),
		),
	)

	taskv1.RegisterTaskServiceServer(grpcServer, taskService)
	taskv1.RegisterPreferenceServiceServer(grpcServer, preferenceService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("task.v1.TaskService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("task.v1.PreferenceService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.IsDevelopment() {
		reflection.Register(grpcServer)
		logger.Info("gRPC reflection enabled")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}

	go func() {
		logger.Info("daybook gRPC server listening", zap.String("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	grpcServer.GracefulStop()
	logger.Info("server shutdown complete")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func runAutoMigration(ctx context.Context, clients *database.Clients, logger *zap.Logger) error {
	logger.Info("running auto migration")
	err := clients.Ent.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	logger.Info("auto migration completed")
	return nil
}

// loggingInterceptor logs each request with its duration and caller.
func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		userID, _ := middleware.UserIDFromContext(ctx)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.String("user_id", userID),
		}
		if err != nil {
			logger.Warn("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("request completed", fields...)
		}
		return resp, err
	}
}
