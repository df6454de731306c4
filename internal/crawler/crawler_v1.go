// Crawler version 1
// Mở rộng một-hop từ một seed summoner: lấy history của seed, tìm mọi
// neighbor đã gặp trong các trận đó, lấy history của từng neighbor "tính đến"
// thời điểm gặp nhau, rồi normalize và ghi thẳng vào MySQL trong một transaction.

package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/limiter"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/internal/riotapi"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedPicker chọn summoner tiếp theo từ frontier trong database
type seedPicker interface {
	RandomUnanalysed(ctx context.Context) (string, error)
}

// summonerLookup tra cứu summoner theo tên qua Riot API
type summonerLookup interface {
	CallSummonerByName(ctx context.Context, name string) (*riotapi.SummonerResponse, error)
}

type CrawlerV1 struct {
	Logger     log.Logger
	Config     *cfg.Config
	Mysql      *db.Mysql
	SummonerMd *model.Summoner
	ChampionMd *model.Champion
	MatchMd    *model.Match
	HistoryMd  *model.SummonerHistory
	BatchMd    *model.Batch
	Caller     *riotapi.Caller
	fetcher    historyFetcher
	picker     seedPicker
	lookup     summonerLookup
	lastResult *RunResult
}

func NewCrawlerV1(logger log.Logger, config *cfg.Config, mysql *db.Mysql) (*CrawlerV1, error) {
	summonerMd, err := model.NewSummoner(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create summoner model: %w", err)
	}

	championMd, err := model.NewChampion(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create champion model: %w", err)
	}

	matchMd, err := model.NewMatch(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create match model: %w", err)
	}

	historyMd, err := model.NewSummonerHistory(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create summoner history model: %w", err)
	}

	batchMd, err := model.NewBatch(config, logger, mysql)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch model: %w", err)
	}

	// Tạo rate limiter từ cấu hình và caller dùng chung cho cả run.
	// Mọi API call đi qua một caller duy nhất vì quota là global phía server.
	rateLimiter := limiter.NewRateLimiter(logger, config.RiotApi.SecondRateLimit, config.RiotApi.MinuteRateLimit)
	caller := riotapi.NewCaller(logger, config, rateLimiter)

	return &CrawlerV1{
		Logger:     logger,
		Config:     config,
		Mysql:      mysql,
		SummonerMd: summonerMd,
		ChampionMd: championMd,
		MatchMd:    matchMd,
		HistoryMd:  historyMd,
		BatchMd:    batchMd,
		Caller:     caller,
		fetcher:    NewFetcher(logger, config, caller),
		picker:     summonerMd,
		lookup:     caller,
	}, nil
}

func (c *CrawlerV1) Crawl() bool {
	ctx := context.Background()
	startTime := time.Now()
	c.Logger.Info(ctx, "Bắt đầu quá trình crawler match history vào %s", startTime.Format(time.RFC3339))

	result, err := c.run(ctx)
	if err != nil {
		c.Logger.Error(ctx, "Crawl thất bại: %v", err)
		return false
	}

	result.StartTime = startTime
	result.EndTime = time.Now()
	c.lastResult = result

	// Chỉ hiển thị thông tin tổng kết
	c.Logger.Info(ctx, "==== KẾT QUẢ CRAWL ====")
	c.Logger.Info(ctx, "Thời gian bắt đầu: %s", result.StartTime.Format(time.RFC3339))
	c.Logger.Info(ctx, "Thời gian kết thúc: %s", result.EndTime.Format(time.RFC3339))
	c.Logger.Info(ctx, "Tổng thời gian thực hiện: %v", result.EndTime.Sub(result.StartTime))
	c.Logger.Info(ctx, "Batch id: %d", result.BatchId)
	c.Logger.Info(ctx, "Seed summoner đã phân tích: %s", result.SummonerAnalysed)
	c.Logger.Info(ctx, "Tổng số summoner: %d", result.Summoners)
	c.Logger.Info(ctx, "Tổng số champion: %d", result.Champions)
	c.Logger.Info(ctx, "Tổng số match: %d", result.Matches)
	c.Logger.Info(ctx, "Tổng số dòng history: %d", result.HistoryRows)

	return true
}

// LastResult trả về kết quả của run gần nhất, nil nếu chưa có run thành công
func (c *CrawlerV1) LastResult() *RunResult {
	return c.lastResult
}

func (c *CrawlerV1) run(ctx context.Context) (*RunResult, error) {
	seed, err := c.selectSeed(ctx)
	if err != nil {
		return nil, err
	}

	depth := c.Config.RiotApi.HistoryDepth
	c.Logger.Info(ctx, "Try to send a maximum of %d requests to riot api...", 1+depth+depth*(depth+1)*9)

	allRows, err := c.collectHistory(ctx, seed, depth)
	if err != nil {
		// Seed fetch lỗi thì bỏ cả run, chưa ghi gì vào database nên seed
		// vẫn eligible cho run sau
		return nil, err
	}

	batchId := time.Now().Unix()
	projections := BuildProjections(allRows, batchId, seed)

	if err := c.persist(ctx, projections, seed); err != nil {
		return nil, err
	}

	return &RunResult{
		BatchId:          batchId,
		SummonerAnalysed: seed,
		Summoners:        len(projections.Summoners),
		Champions:        len(projections.Champions),
		Matches:          len(projections.Matches),
		HistoryRows:      len(projections.Histories),
	}, nil
}

// selectSeed chọn summoner tiếp theo để phân tích: ưu tiên một summoner
// ngẫu nhiên chưa được phân tích trong database, fallback tra cứu
// default summoner theo tên khi frontier trống.
func (c *CrawlerV1) selectSeed(ctx context.Context) (string, error) {
	puuid, err := c.picker.RandomUnanalysed(ctx)
	if err == nil {
		c.Logger.Info(ctx, "Analyse history of random summoner: puuid = %s", puuid)
		return puuid, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to select summoner from database: %w", err)
	}

	// Cold start: database chưa có summoner nào chưa phân tích
	defaultName := c.Config.RiotApi.DefaultSummoner
	summoner, err := c.lookup.CallSummonerByName(ctx, defaultName)
	if err != nil {
		return "", fmt.Errorf("failed to look up default summoner %s: %w", defaultName, err)
	}

	c.Logger.Info(ctx, "Use default summoner name %s as a starting point", defaultName)
	return summoner.Puuid, nil
}

// encounter là một lần gặp neighbor: puuid của neighbor và start date
// của trận mà seed đã gặp họ.
type encounter struct {
	Puuid     string
	StartDate time.Time
}

// neighborEncounters trả về các cặp (puuid, startDate) distinct trong history
// của seed, loại chính seed ra. Key theo cặp chứ không theo puuid: một
// neighbor gặp ở hai trận khác nhau được expand hai lần, mỗi lần scope
// "tính đến" thời điểm gặp đó.
func neighborEncounters(rows []ParticipantRow, seed string) []encounter {
	seen := make(map[encounter]bool, len(rows))
	encounters := make([]encounter, 0, len(rows))

	for _, row := range rows {
		if row.Puuid == seed {
			continue
		}
		e := encounter{Puuid: row.Puuid, StartDate: row.StartDate}
		if seen[e] {
			continue
		}
		seen[e] = true
		encounters = append(encounters, e)
	}

	return encounters
}

// collectHistory chạy traversal một-hop: history của seed rồi history của
// từng neighbor, nối tất cả thành một batch trong bộ nhớ.
func (c *CrawlerV1) collectHistory(ctx context.Context, seed string, depth int) ([]ParticipantRow, error) {
	seedHistory, err := c.fetcher.FetchHistory(ctx, seed, depth, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed history: %w", err)
	}

	allRows := make([]ParticipantRow, 0, len(seedHistory)*(depth+1))
	allRows = append(allRows, seedHistory...)

	// Mở rộng từng neighbor theo thời điểm gặp nhau
	for _, neighbor := range neighborEncounters(seedHistory, seed) {
		rows, err := c.fetcher.FetchHistory(ctx, neighbor.Puuid, depth, neighbor.StartDate.Unix())
		if err != nil {
			// Một neighbor lỗi chỉ đóng góp 0 dòng, traversal vẫn tiếp tục
			c.Logger.Warn(ctx, "Failed to fetch history of neighbor %s: %v", neighbor.Puuid, err)
			continue
		}
		allRows = append(allRows, rows...)
	}

	c.Logger.Info(ctx, "Received all responses")
	return allRows, nil
}

// persist ghi năm projection và flag update của seed trong đúng một
// transaction: directory trước, fact table sau, flag cuối cùng.
// Conflict trên natural key thì bỏ qua dòng mới, không bao giờ overwrite.
func (c *CrawlerV1) persist(ctx context.Context, projections *Projections, seed string) error {
	db, err := c.Mysql.Db()
	if err != nil {
		c.Logger.Error(ctx, "Không thể kết nối đến database: %v", err)
		return err
	}

	c.Logger.Info(ctx, "Start data insertion in MySQL database '%s'...", c.Config.Mysql.Database)

	err = db.Transaction(func(tx *gorm.DB) error {
		insertIgnore := clause.OnConflict{DoNothing: true}

		if err := tx.Clauses(insertIgnore).Create(&projections.Batch).Error; err != nil {
			return fmt.Errorf("failed to insert batch: %w", err)
		}

		if len(projections.Summoners) > 0 {
			if err := tx.Clauses(insertIgnore).CreateInBatches(projections.Summoners, 100).Error; err != nil {
				return fmt.Errorf("failed to insert summoners: %w", err)
			}
		}

		if len(projections.Champions) > 0 {
			if err := tx.Clauses(insertIgnore).CreateInBatches(projections.Champions, 100).Error; err != nil {
				return fmt.Errorf("failed to insert champions: %w", err)
			}
		}

		if len(projections.Matches) > 0 {
			if err := tx.Clauses(insertIgnore).CreateInBatches(projections.Matches, 100).Error; err != nil {
				return fmt.Errorf("failed to insert matches: %w", err)
			}
		}

		if len(projections.Histories) > 0 {
			if err := tx.Clauses(insertIgnore).CreateInBatches(projections.Histories, 100).Error; err != nil {
				return fmt.Errorf("failed to insert summoner history: %w", err)
			}
		}

		// Flag đi cùng transaction: crash giữa chừng không được để seed
		// vừa có history dở dang vừa còn được chọn lại
		if err := c.SummonerMd.MarkAnalysed(tx, seed); err != nil {
			return fmt.Errorf("failed to mark summoner analysed: %w", err)
		}

		return nil
	})
	if err != nil {
		c.Logger.Error(ctx, "Transaction rolled back: %v", err)
		return err
	}

	c.Logger.Info(ctx, "End of data insertion")
	c.Logger.Info(ctx, "Update summoner table for %s", seed)
	return nil
}
