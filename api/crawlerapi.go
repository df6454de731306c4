// Package api cung cấp các API public để tương tác với Riot crawler
package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/crawler"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

// CrawlStats chứa thống kê về quá trình crawling
type CrawlStats struct {
	Version          string    `json:"version"`
	IsRunning        bool      `json:"isRunning"`
	StartTime        time.Time `json:"startTime"`
	Duration         string    `json:"duration"`
	BatchId          int64     `json:"batchId"`
	SummonerAnalysed string    `json:"summonerAnalysed"`
	SummonersCrawled int       `json:"summonersCrawled"`
	MatchesCrawled   int       `json:"matchesCrawled"`
	HistoryRows      int       `json:"historyRows"`
	LastError        string    `json:"lastError"`
}

// resultReporter là crawler có thể báo cáo kết quả run gần nhất
type resultReporter interface {
	LastResult() *crawler.RunResult
}

// CrawlerAPI cung cấp các API để tương tác với Riot Crawler
type CrawlerAPI struct {
	ctx          context.Context
	config       *cfg.Config
	logger       log.Logger
	mysql        *db.Mysql
	crawling     bool
	crawlStatsMu sync.RWMutex
	crawlStats   *CrawlStats
}

// NewCrawlerAPI tạo một instance mới của CrawlerAPI
func NewCrawlerAPI() *CrawlerAPI {
	return &CrawlerAPI{
		crawlStats: &CrawlStats{},
	}
}

// Initialize khởi tạo các thành phần cần thiết cho crawler
func (a *CrawlerAPI) Initialize(ctx context.Context) error {
	a.ctx = ctx

	var err error

	// Load configuration
	loader, _ := cfg.NewViperLoader()
	a.config, err = loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	a.logger, _ = log.NewCslLogger()

	// Setup database
	a.mysql, err = db.NewMysql(a.config)
	if err != nil {
		return fmt.Errorf("failed to create mysql wrapper: %w", err)
	}

	// Migrate các bảng của data model
	summonerMd, _ := model.NewSummoner(a.config, a.logger, a.mysql)
	championMd, _ := model.NewChampion(a.config, a.logger, a.mysql)
	matchMd, _ := model.NewMatch(a.config, a.logger, a.mysql)
	historyMd, _ := model.NewSummonerHistory(a.config, a.logger, a.mysql)
	batchMd, _ := model.NewBatch(a.config, a.logger, a.mysql)
	if err := a.mysql.Migrate(summonerMd, championMd, matchMd, historyMd, batchMd); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// Config trả về config đã load, nil nếu chưa Initialize
func (a *CrawlerAPI) Config() *cfg.Config {
	return a.config
}

// Mysql trả về database wrapper, nil nếu chưa Initialize
func (a *CrawlerAPI) Mysql() *db.Mysql {
	return a.mysql
}

// IsRunning cho biết có run nào đang chạy không
func (a *CrawlerAPI) IsRunning() bool {
	a.crawlStatsMu.RLock()
	defer a.crawlStatsMu.RUnlock()
	return a.crawling
}

// StartCrawl chạy một run crawl ở background với version được chọn.
// Mỗi thời điểm chỉ một run: quota của Riot là global nên mọi request
// phải đi qua một điểm quan sát rate limit duy nhất.
func (a *CrawlerAPI) StartCrawl(version string) error {
	a.crawlStatsMu.Lock()
	if a.config == nil || a.mysql == nil {
		a.crawlStatsMu.Unlock()
		return errors.New("crawler api is not initialized, call Initialize first")
	}
	if a.crawling {
		a.crawlStatsMu.Unlock()
		return errors.New("a crawl is already running")
	}

	ins, err := crawler.FactoryCrawler(version, a.logger, a.config, a.mysql)
	if err != nil {
		a.crawlStatsMu.Unlock()
		return err
	}

	a.crawling = true
	a.crawlStats = &CrawlStats{
		Version:   version,
		IsRunning: true,
		StartTime: time.Now(),
	}
	a.crawlStatsMu.Unlock()

	go func() {
		ok := ins.Crawl()

		a.crawlStatsMu.Lock()
		defer a.crawlStatsMu.Unlock()

		a.crawling = false
		a.crawlStats.IsRunning = false
		a.crawlStats.Duration = time.Since(a.crawlStats.StartTime).String()

		if !ok {
			a.crawlStats.LastError = "crawl failed, see logs"
			return
		}

		if reporter, isReporter := ins.(resultReporter); isReporter {
			if result := reporter.LastResult(); result != nil {
				a.crawlStats.BatchId = result.BatchId
				a.crawlStats.SummonerAnalysed = result.SummonerAnalysed
				a.crawlStats.SummonersCrawled = result.Summoners
				a.crawlStats.MatchesCrawled = result.Matches
				a.crawlStats.HistoryRows = result.HistoryRows
			}
		}
	}()

	return nil
}

// GetCrawlStats trả về snapshot thống kê của run hiện tại hoặc gần nhất
func (a *CrawlerAPI) GetCrawlStats() CrawlStats {
	a.crawlStatsMu.RLock()
	defer a.crawlStatsMu.RUnlock()

	stats := *a.crawlStats
	if stats.IsRunning {
		stats.Duration = time.Since(stats.StartTime).String()
	}
	return stats
}
