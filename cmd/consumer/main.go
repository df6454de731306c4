package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/pkg/kafka"
	"github.com/thep200/riot-crawler/pkg/log"
)

func main() {
	// Load configuration
	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, _ := log.NewCslLogger()

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info(ctx, "Received signal %v, shutting down consumer", sig)
		cancel()
	}()

	// Consumer theo dõi batch events do crawler v2 publish
	consumer := kafka.NewConsumer(config, logger, config.Kafka.Producer.TopicBatch, config.Kafka.Consumer.GroupID)
	defer consumer.Close()

	consumer.RegisterHandler("batch", func(value []byte) error {
		var message model.BatchMessage
		if err := json.Unmarshal(value, &message); err != nil {
			return fmt.Errorf("failed to unmarshal batch message: %w", err)
		}

		logger.Info(ctx, "Batch %d: seed=%s summoners=%d champions=%d matches=%d history=%d duration=%ds",
			message.BatchId, message.SummonerAnalysed, message.Summoners, message.Champions,
			message.Matches, message.HistoryRows, message.DurationSeconds)
		return nil
	})

	if err := consumer.Start(ctx); err != nil {
		logger.Error(ctx, "Consumer stopped with error: %v", err)
		os.Exit(1)
	}
}
