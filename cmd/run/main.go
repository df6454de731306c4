package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/crawler"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

type Handler struct {
	Crawler crawler.Crawler
	Logger  log.Logger
}

func NewHandler(crawler crawler.Crawler, logger log.Logger) *Handler {
	return &Handler{
		Crawler: crawler,
		Logger:  logger,
	}
}

func main() {
	// Hai tham số bắt buộc: Riot api key và password database.
	// Flag override giá trị trong file config.
	apiKey := flag.String("api-key", "", "Riot api key")
	dbPass := flag.String("db-pass", "", "Password for the database connection")
	version := flag.String("version", "v1", "Crawler version (v1|v2)")
	flag.Parse()

	ctx := context.Background()
	// loader, _ := cfg.NewMockLoader()
	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *apiKey != "" {
		config.RiotApi.ApiKey = *apiKey
	}
	if *dbPass != "" {
		config.Mysql.Password = *dbPass
	}
	if config.RiotApi.ApiKey == "" {
		fmt.Println("Riot api key is required (flag -api-key or config riotapi.apikey)")
		os.Exit(1)
	}
	if config.Mysql.Password == "" {
		fmt.Println("Database password is required (flag -db-pass or config mysql.password)")
		os.Exit(1)
	}

	// Log ra file nếu được cấu hình, không thì ra console
	var logger log.Logger
	if config.App.LogFile != "" {
		fileLogger, err := log.NewFileLogger(config.App.LogFile)
		if err != nil {
			fmt.Printf("Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		logger = fileLogger
	} else {
		logger, _ = log.NewCslLogger()
	}

	mysql, _ := db.NewMysql(config)
	summonerMd, _ := model.NewSummoner(config, logger, mysql)
	championMd, _ := model.NewChampion(config, logger, mysql)
	matchMd, _ := model.NewMatch(config, logger, mysql)
	historyMd, _ := model.NewSummonerHistory(config, logger, mysql)
	batchMd, _ := model.NewBatch(config, logger, mysql)

	ins, err := crawler.FactoryCrawler(*version, logger, config, mysql)
	if err != nil {
		logger.Error(ctx, "Failed to create crawler: %v", err)
		os.Exit(1)
	}

	// Migrate database
	mysql.Migrate(summonerMd, championMd, matchMd, historyMd, batchMd)

	//
	logger.Info(ctx, "Program starting")
	handler := NewHandler(ins, logger)
	if handler.Crawler.Crawl() {
		logger.Info(ctx, "Program ends successfully")
	} else {
		logger.Error(ctx, "Program failed")
	}
	logger.Info(ctx, "%s", strings.Repeat("-", 150))
	mysql.Close()
}
