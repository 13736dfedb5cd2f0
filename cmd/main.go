package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"golang.org/x/sync/errgroup"

	"mesa-bounty/internal/adapter/events"
	"mesa-bounty/internal/adapter/http"
	"mesa-bounty/internal/adapter/memory"
	"mesa-bounty/internal/adapter/postgres"
	redisadapter "mesa-bounty/internal/adapter/redis"
	"mesa-bounty/internal/adapter/settlement"
	"mesa-bounty/internal/adapter/usecase"
	"mesa-bounty/internal/adapter/worker"
	"mesa-bounty/internal/config"
	"mesa-bounty/internal/core/port"
	"mesa-bounty/internal/db"
	"mesa-bounty/internal/metrics"
	"mesa-bounty/internal/refcode"
)

const serviceName = "mesa-bounty"

// main is the entry point of the referral payout service. It loads
// configuration, wires storage, queue and settlement adapters, then runs the
// HTTP server and the background workers until a termination signal.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout, serviceName)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("close resource", slog.Any("error", err))
			}
		}
	}()

	m := metrics.Default()
	ids, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		return fmt.Errorf("snowflake node: %w", err)
	}

	// Campaign store.
	var repo port.CampaignRepository
	if cfg.Psql.InMemory {
		logger.Warn("using in-memory campaign store")
		repo = memory.NewCampaignRepository()
	} else {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		closers = append(closers, func() error { pool.Close(); return nil })
		repo = postgres.NewCampaignRepository(pool)
	}
	if cfg.Psql.Seed {
		id, err := db.Seed(ctx, repo, ids, time.Now())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if id != 0 {
			logger.Info("demo campaign seeded", slog.Int64("campaign_id", id))
		}
	}

	// Payout queue and sweep lock.
	var (
		queue  port.PayoutQueue
		locker port.Locker
	)
	if cfg.Redis.InMemory {
		logger.Warn("using in-memory payout queue, run a single replica only")
		queue = memory.NewPayoutQueue(cfg.Queue.VisibilityTimeout)
		locker = memory.NewLocker()
	} else {
		client, err := redisadapter.Connect(ctx, cfg.Redis.Addr)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		closers = append(closers, client.Close)
		queue = redisadapter.NewPayoutQueue(client, cfg.Queue.Prefix, cfg.Queue.VisibilityTimeout)
		locker = redisadapter.NewLocker(client, "bounty:lock:")
	}

	// Domain events.
	var publisher port.EventPublisher = events.NewLogPublisher(logger)
	if len(cfg.Kafka.Brokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return fmt.Errorf("kafka publisher: %w", err)
		}
		closers = append(closers, kp.Close)
		publisher = kp
	}

	loc, err := cfg.Sweep.Location()
	if err != nil {
		return err
	}
	hour, minute, err := cfg.Sweep.Clock()
	if err != nil {
		return err
	}
	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithMetrics(m),
		usecase.WithEvents(publisher),
	}

	network := settlement.NewClient(cfg.Settlement.BaseURL, cfg.Settlement.Token, cfg.Settlement.Timeout,
		settlement.WithConfirmation(cfg.Settlement.ConfirmInterval, cfg.Settlement.ConfirmTimeout))

	relay := usecase.NewOutboxRelay(repo, queue, cfg.Queue.OutboxBatch, opts...)
	campaigns := usecase.NewCampaignUseCase(repo, queue, ids, opts...)
	enrollment := usecase.NewEnrollmentUseCase(repo, refcode.New(cfg.Referral.CodeLength), cfg.Referral.MaxAttempts, opts...)
	referrals := usecase.NewReferralUseCase(repo, relay, opts...)
	settle := usecase.NewSettlementUseCase(repo, network, cfg.Settlement.Lease, opts...)
	expiry := usecase.NewExpiryUseCase(repo, locker, loc, cfg.Sweep.LockTTL, opts...)

	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:  campaigns,
		Enrollment: enrollment,
		Referrals:  referrals,
		Expiry:     expiry,
	}, httpadapter.Secrets{
		WebhookSecret: cfg.Security.WebhookSecret,
		AdminToken:    cfg.Security.AdminToken,
	}, nil, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if cfg.WorkerEnabled {
		payouts := worker.NewPayoutWorker(queue, settle, publisher, m, logger, worker.PayoutConfig{
			Concurrency:    cfg.Queue.Concurrency,
			PollInterval:   cfg.Queue.PollInterval,
			MaxAttempts:    cfg.Queue.MaxAttempts,
			BackoffInitial: cfg.Queue.BackoffInitial,
			BackoffMax:     cfg.Queue.BackoffMax,
		})
		g.Go(func() error { return payouts.Run(gctx) })

		outbox := worker.NewOutboxWorker(relay, cfg.Queue.OutboxInterval, logger)
		g.Go(func() error { return outbox.Run(gctx) })

		if cfg.Sweep.Enabled {
			scheduler := worker.NewExpiryScheduler(expiry, loc, hour, minute, logger)
			g.Go(func() error { return scheduler.Run(gctx) })
		}
	}

	return g.Wait()
}
