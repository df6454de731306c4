package crawler

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/model"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
	"gorm.io/gorm"
)

// newPersistCrawler dựng CrawlerV1 trên database in-memory đã migrate
// đủ năm bảng, trả kèm gorm.DB để test query trực tiếp
func newPersistCrawler(t *testing.T) (*CrawlerV1, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Mỗi connection tới :memory: là một database riêng, giữ pool ở một
	// connection để mọi query nhìn cùng một database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	loader, err := cfg.NewMockLoader()
	require.NoError(t, err)
	config, err := loader.Load()
	require.NoError(t, err)

	mysql, err := db.NewMysqlFromDb(config, gdb)
	require.NoError(t, err)
	require.NoError(t, mysql.Migrate(&model.Summoner{}, &model.Champion{}, &model.Match{}, &model.SummonerHistory{}, &model.Batch{}))

	logger, err := log.NewCslLogger()
	require.NoError(t, err)

	summonerMd, err := model.NewSummoner(config, logger, mysql)
	require.NoError(t, err)

	return &CrawlerV1{
		Logger:     logger,
		Config:     config,
		Mysql:      mysql,
		SummonerMd: summonerMd,
	}, gdb
}

// persistRows là một batch nhỏ: seed chơi hai trận với hai người khác nhau
func persistRows(t1 time.Time) []ParticipantRow {
	return []ParticipantRow{
		{Puuid: "seed", SummonerName: "Seed", ChampionId: 1, ChampionName: "Annie", MatchId: "EUW1_1", StartDate: t1, TeamId: 100, TeamPosition: "MIDDLE", Win: true, QueueId: 420},
		{Puuid: "friend-a", SummonerName: "FriendA", ChampionId: 2, ChampionName: "Olaf", MatchId: "EUW1_1", StartDate: t1, TeamId: 200, TeamPosition: "TOP", Win: false, QueueId: 420},
		{Puuid: "seed", SummonerName: "Seed", ChampionId: 1, ChampionName: "Annie", MatchId: "EUW1_2", StartDate: t1.Add(time.Hour), TeamId: 100, TeamPosition: "MIDDLE", Win: false, QueueId: 420},
		{Puuid: "friend-b", SummonerName: "FriendB", ChampionId: 3, ChampionName: "Ahri", MatchId: "EUW1_2", StartDate: t1.Add(time.Hour), TeamId: 200, TeamPosition: "MIDDLE", Win: true, QueueId: 420},
	}
}

func tableCount(t *testing.T, gdb *gorm.DB, md interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(md).Count(&count).Error)
	return count
}

func TestPersistWritesAllProjectionsAndFlagsSeed(t *testing.T) {
	c, gdb := newPersistCrawler(t)
	t1 := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

	projections := BuildProjections(persistRows(t1), 1712000000, "seed")
	require.NoError(t, c.persist(context.Background(), projections, "seed"))

	assert.Equal(t, int64(3), tableCount(t, gdb, &model.Summoner{}))
	assert.Equal(t, int64(3), tableCount(t, gdb, &model.Champion{}))
	assert.Equal(t, int64(2), tableCount(t, gdb, &model.Match{}))
	assert.Equal(t, int64(4), tableCount(t, gdb, &model.SummonerHistory{}))
	assert.Equal(t, int64(1), tableCount(t, gdb, &model.Batch{}))

	// Flag đi cùng transaction với data
	var seed model.Summoner
	require.NoError(t, gdb.Where("puuid = ?", "seed").Take(&seed).Error)
	assert.True(t, seed.IsSummonerAnalysed)
}

func TestPersistReIngestionIsNoOp(t *testing.T) {
	c, gdb := newPersistCrawler(t)
	t1 := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

	projections := BuildProjections(persistRows(t1), 1712000000, "seed")
	require.NoError(t, c.persist(context.Background(), projections, "seed"))
	require.NoError(t, c.persist(context.Background(), projections, "seed"))

	// Chạy lại đúng batch: mọi bảng giữ nguyên số dòng
	assert.Equal(t, int64(3), tableCount(t, gdb, &model.Summoner{}))
	assert.Equal(t, int64(3), tableCount(t, gdb, &model.Champion{}))
	assert.Equal(t, int64(2), tableCount(t, gdb, &model.Match{}))
	assert.Equal(t, int64(4), tableCount(t, gdb, &model.SummonerHistory{}))
	assert.Equal(t, int64(1), tableCount(t, gdb, &model.Batch{}))

	// Flag chỉ đi một chiều, vẫn true sau lần hai
	var seed model.Summoner
	require.NoError(t, gdb.Where("puuid = ?", "seed").Take(&seed).Error)
	assert.True(t, seed.IsSummonerAnalysed)
}

func TestPersistOverlappingMatchKeepsFirstRows(t *testing.T) {
	c, gdb := newPersistCrawler(t)
	t1 := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

	first := BuildProjections(persistRows(t1), 1712000000, "seed")
	require.NoError(t, c.persist(context.Background(), first, "seed"))

	// Batch sau gặp lại EUW1_1 cộng một trận mới EUW1_9
	overlap := []ParticipantRow{
		{Puuid: "seed", SummonerName: "Seed", ChampionId: 1, ChampionName: "Annie", MatchId: "EUW1_1", StartDate: t1, TeamId: 100, TeamPosition: "MIDDLE", Win: true, QueueId: 420},
		{Puuid: "friend-a", SummonerName: "FriendA", ChampionId: 2, ChampionName: "Olaf", MatchId: "EUW1_9", StartDate: t1.Add(2 * time.Hour), TeamId: 100, TeamPosition: "TOP", Win: true, QueueId: 420},
	}
	second := BuildProjections(overlap, 1712009999, "friend-a")
	require.NoError(t, c.persist(context.Background(), second, "friend-a"))

	// Chỉ trận mới được thêm, dòng history của EUW1_1 không bị ghi đè
	assert.Equal(t, int64(3), tableCount(t, gdb, &model.Match{}))
	assert.Equal(t, int64(5), tableCount(t, gdb, &model.SummonerHistory{}))
	assert.Equal(t, int64(2), tableCount(t, gdb, &model.Batch{}))

	var row model.SummonerHistory
	require.NoError(t, gdb.Where("match_id = ? AND puuid = ?", "EUW1_1", "seed").Take(&row).Error)
	assert.Equal(t, int64(1712000000), row.BatchId)
}

func TestPersistRemovesSeedFromFrontier(t *testing.T) {
	c, gdb := newPersistCrawler(t)
	t1 := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)

	projections := BuildProjections(persistRows(t1), 1712000000, "seed")
	require.NoError(t, c.persist(context.Background(), projections, "seed"))

	// Seed ra khỏi frontier, hai neighbor mới vẫn chưa phân tích
	var unanalysed []model.Summoner
	require.NoError(t, gdb.Where("is_summoner_analysed = ?", false).Find(&unanalysed).Error)
	require.Len(t, unanalysed, 2)
	for _, s := range unanalysed {
		assert.NotEqual(t, "seed", s.Puuid)
	}
}
