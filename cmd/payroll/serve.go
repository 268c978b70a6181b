package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/hrledger/payroll-system/internal/api"
	"github.com/hrledger/payroll-system/internal/api/handler"
	"github.com/hrledger/payroll-system/internal/api/metrics"
	"github.com/hrledger/payroll-system/internal/core/domain"
	"github.com/hrledger/payroll-system/internal/core/ports"
	"github.com/hrledger/payroll-system/internal/core/service"
	mongostore "github.com/hrledger/payroll-system/internal/infrastructure/db/mongo"
	redisstore "github.com/hrledger/payroll-system/internal/infrastructure/db/redis"
	"github.com/hrledger/payroll-system/internal/infrastructure/memory"
	"github.com/hrledger/payroll-system/internal/infrastructure/queue"
	"github.com/hrledger/payroll-system/internal/pkg/config"
	"github.com/hrledger/payroll-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the payroll HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := cfg.ValidateServe(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			return serve(cmd.Context(), cfg, opts.seed || cfg.SeedDemoData)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, seed bool) error {
	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    !cfg.IsProduction(),
		Component: "api",
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		idem   ports.IdempotencyStore
		checks []handler.DependencyCheck
	)
	if cfg.Redis.Addr != "" {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		checks = append(checks, handler.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		instance := uuid.NewString()
		idem = redisstore.NewIdempotencyStore(client, instance, cfg.Redis.IdempotencyTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Str("instance", instance).Msg("idempotency keys stored in redis")
	} else {
		idem = memory.NewIdempotencyStore(cfg.Redis.IdempotencyTTL)
		log.Info().Msg("idempotency keys stored in memory")
	}

	// The worker outlives ctx so in-flight requests can finish during shutdown.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	serializer := queue.NewSerializer(0, log)
	serializer.Start(workerCtx)

	company := queue.NewCompanyService(service.NewCompanyService(domain.NewCompany(), idem, log), serializer)
	if seed {
		if err := service.SeedDemoData(ctx, company); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		log.Info().Msg("demo data loaded")
	}

	configured := []domain.User{
		{Username: cfg.Auth.AdminUsername, PasswordHash: cfg.Auth.AdminPasswordHash, Role: domain.RoleAdmin},
		{Username: cfg.Auth.ViewerUsername, PasswordHash: cfg.Auth.ViewerPasswordHash, Role: domain.RoleViewer},
	}

	var users ports.AuthRepository
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		operators := mongostore.NewOperatorRepository(db)
		if err := bootstrapOperators(ctx, operators, configured); err != nil {
			return err
		}
		checks = append(checks, handler.DependencyCheck{
			Name: "mongo",
			Ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		})
		users = operators
		log.Info().Str("database", cfg.Mongo.Database).Msg("operators stored in mongo")
	} else {
		repo := memory.NewUserRepository(configured...)
		users = repo
		log.Info().Int("users", repo.Len()).Msg("operators loaded from environment")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterQueueDepth(reg, serializer.Pending)

	e := api.NewRouter(api.Deps{
		Company:   company,
		Auth:      service.NewAuthService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		JWTSecret: cfg.Auth.JWTSecret,
		Registry:  reg,
		Logger:    log,

		ReadinessChecks: checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// bootstrapOperators creates the operator index and upserts every configured
// account that carries a password hash.
func bootstrapOperators(ctx context.Context, r *mongostore.OperatorRepository, users []domain.User) error {
	if err := r.EnsureIndexes(ctx); err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == "" || u.PasswordHash == "" {
			continue
		}
		if err := r.Save(ctx, u); err != nil {
			return fmt.Errorf("bootstrap operator: %w", err)
		}
	}
	return nil
}
