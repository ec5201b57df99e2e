package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookloop/lending-service/config"
	"github.com/bookloop/lending-service/internal/handler"
	"github.com/bookloop/lending-service/internal/repository"
	"github.com/bookloop/lending-service/internal/server"
	"github.com/bookloop/lending-service/internal/service"
	"github.com/bookloop/lending-service/migrations"
	"github.com/bookloop/lending-service/pkg/kafka"
	"github.com/bookloop/lending-service/pkg/logger"
	"github.com/bookloop/lending-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	pub := service.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		pub = service.NewPublisher(producer)
	}

	svc := service.NewService(repo, pub, log)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	go sweepOverdue(sweepCtx, svc, cfg.SweepInterval, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(cfg))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// sweepOverdue periodically flags overdue loans so persisted statuses
// keep up with the derived ones between API calls.
func sweepOverdue(ctx context.Context, svc *service.Service, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			loans, err := svc.RefreshOverdue(ctx, time.Time{})
			if err != nil {
				log.Error("overdue sweep", zap.Error(err))
				continue
			}
			if len(loans) > 0 {
				log.Info("overdue sweep", zap.Int("flagged", len(loans)))
			}
		}
	}
}
