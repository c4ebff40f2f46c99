package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/coastalwx/marine-forecast-etl/internal/adapter/csvfile"
	httpadapter "github.com/coastalwx/marine-forecast-etl/internal/adapter/http"
	kafkaadapter "github.com/coastalwx/marine-forecast-etl/internal/adapter/kafka"
	"github.com/coastalwx/marine-forecast-etl/internal/adapter/nws"
	"github.com/coastalwx/marine-forecast-etl/internal/config"
	"github.com/coastalwx/marine-forecast-etl/internal/domain"
	"github.com/coastalwx/marine-forecast-etl/internal/observability"
	"github.com/coastalwx/marine-forecast-etl/internal/pipeline"
	"github.com/coastalwx/marine-forecast-etl/internal/scheduler"
)

func main() {
	once := flag.Bool("once", false, "run a single extraction cycle and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := nws.NewClient(cfg.HTTPTimeout, cfg.FetchMaxRetries, logger)
	sink := csvfile.NewWriter(cfg.OutputCSVPath, cfg.MirrorCSVPath, logger)

	// Kafka publishing is feature-flagged via KAFKA_ENABLED.
	var publisher pipeline.Publisher
	var kafkaWriter *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		kafkaWriter = kafkaadapter.NewWriter(cfg, logger)
		publisher = kafkaWriter
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	p := pipeline.New(domain.DefaultZones(), fetcher, sink, publisher, logger, metrics)

	if *once {
		runOnce(p, kafkaWriter, logger)
		return
	}

	srv := httpadapter.NewServer(cfg.ServerAddr, p, logger)
	sched := scheduler.New(p, cfg.FetchInterval, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the extraction schedule; the first cycle runs immediately.
	if err := sched.Start(); err != nil {
		logger.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	sched.Stop()
	p.MarkStopped()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// runOnce executes one cycle without the HTTP server or scheduler, for cron
// use and smoke checks.
func runOnce(p *pipeline.Pipeline, kafkaWriter *kafkaadapter.Writer, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := p.RunCycle(ctx)
	if kafkaWriter != nil {
		if cerr := kafkaWriter.Close(); cerr != nil {
			logger.Error("kafka writer close error", "error", cerr)
		}
	}
	if err != nil {
		logger.Error("cycle failed", "error", err)
		os.Exit(1)
	}
}
