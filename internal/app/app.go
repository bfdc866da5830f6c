package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/ticket-scoring/api/v1"
	"github.com/godilite/ticket-scoring/internal/config"
	handler "github.com/godilite/ticket-scoring/internal/grpc"
	"github.com/godilite/ticket-scoring/internal/repository"
	"github.com/godilite/ticket-scoring/internal/service"
	"github.com/godilite/ticket-scoring/pkg/cache"
	dbbuilder "github.com/godilite/ticket-scoring/pkg/database"
	grpcsrv "github.com/godilite/ticket-scoring/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	if cfg.DBMigrate {
		if err := dbbuilder.MigrateUp(dbPool); err != nil {
			return nil, fmt.Errorf("database migration failed: %w", err)
		}
		logger.Info("Database schema migrated")
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	ratingRepo := repository.NewRatingRepository(dbPool)

	scoringService := service.NewScoringService(ratingRepo, logger)

	grpcHandlers := handler.NewGRPCHandlers(scoringService, cacheClient, logger, 10*time.Minute)

	serverOpts := []grpcsrv.Option{
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	}
	if cfg.APIKey != "" {
		serverOpts = append(serverOpts,
			grpcsrv.WithUnaryInterceptors(grpcsrv.APIKeyInterceptor(cfg.APIKeyHeader, cfg.APIKey)))
	}

	grpcServer, err := grpcsrv.New(serverOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterTicketScoringServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC server shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}
