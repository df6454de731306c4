// Crawler version 2
// Dựa trên CrawlerV1 nhưng sau khi commit thành công sẽ publish một
// BatchMessage vào Kafka để các consumer theo dõi tiến độ crawl.

package crawler

import (
	"context"
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/pkg/db"
	kafkapkg "github.com/thep200/riot-crawler/pkg/kafka"
	"github.com/thep200/riot-crawler/pkg/log"
)

type CrawlerV2 struct {
	Logger        log.Logger
	Config        *cfg.Config
	inner         *CrawlerV1
	batchProducer *kafkapkg.Producer
}

func NewCrawlerV2(logger log.Logger, config *cfg.Config, mysql *db.Mysql) (*CrawlerV2, error) {
	inner, err := NewCrawlerV1(logger, config, mysql)
	if err != nil {
		return nil, err
	}

	// Khởi tạo Kafka producer cho batch events
	batchProducer := kafkapkg.NewProducer(config, logger, config.Kafka.Producer.TopicBatch)

	return &CrawlerV2{
		Logger:        logger,
		Config:        config,
		inner:         inner,
		batchProducer: batchProducer,
	}, nil
}

func (c *CrawlerV2) Crawl() bool {
	ctx := context.Background()

	ok := c.inner.Crawl()

	if ok {
		c.publishBatch(ctx, c.inner.LastResult())
	}

	if err := c.batchProducer.Close(); err != nil {
		c.Logger.Error(ctx, "Error closing batch producer: %v", err)
	}

	return ok
}

func (c *CrawlerV2) LastResult() *RunResult {
	return c.inner.LastResult()
}

// publishBatch gửi tổng kết run vào Kafka. Đây chỉ là notification:
// database đã commit xong, publish lỗi không làm run thất bại.
func (c *CrawlerV2) publishBatch(ctx context.Context, result *RunResult) {
	if result == nil {
		return
	}

	message := model.BatchMessage{
		BatchId:          result.BatchId,
		SummonerAnalysed: result.SummonerAnalysed,
		Summoners:        result.Summoners,
		Champions:        result.Champions,
		Matches:          result.Matches,
		HistoryRows:      result.HistoryRows,
		DurationSeconds:  int64(result.EndTime.Sub(result.StartTime) / time.Second),
	}

	if err := c.batchProducer.Publish(ctx, "batch", message); err != nil {
		c.Logger.Error(ctx, "Failed to publish batch message: %v", err)
		return
	}

	c.Logger.Info(ctx, "Published batch %d to Kafka topic %s", result.BatchId, c.Config.Kafka.Producer.TopicBatch)
}
