package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thep200/riot-crawler/api"
	"github.com/thep200/riot-crawler/internal/ui"
	"github.com/thep200/riot-crawler/pkg/log"
)

func main() {
	port := flag.Int("port", 8080, "Port for the results server")
	flag.Parse()

	ctx := context.Background()
	logger, _ := log.NewCslLogger()

	// CrawlerAPI lo phần config, database và migrate
	crawlerAPI := api.NewCrawlerAPI()
	if err := crawlerAPI.Initialize(ctx); err != nil {
		fmt.Printf("Failed to initialize crawler api: %v\n", err)
		os.Exit(1)
	}

	server, err := ui.NewServer(logger, crawlerAPI.Config(), crawlerAPI.Mysql(), crawlerAPI, *port)
	if err != nil {
		logger.Error(ctx, "Failed to create server: %v", err)
		os.Exit(1)
	}

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info(ctx, "Received signal %v, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error(ctx, "Failed to stop server: %v", err)
		}
	}()

	if err := server.Start(); err != nil {
		logger.Error(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
}
