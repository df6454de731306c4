package crawler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/riotapi"
	"github.com/thep200/riot-crawler/pkg/log"
	"gorm.io/gorm"
)

// stubPicker thay frontier query thật trong database
type stubPicker struct {
	puuid string
	err   error
	calls int
}

func (s *stubPicker) RandomUnanalysed(ctx context.Context) (string, error) {
	s.calls++
	return s.puuid, s.err
}

// stubLookup thay lookup summoner theo tên qua Riot API
type stubLookup struct {
	resp  *riotapi.SummonerResponse
	err   error
	names []string
}

func (s *stubLookup) CallSummonerByName(ctx context.Context, name string) (*riotapi.SummonerResponse, error) {
	s.names = append(s.names, name)
	return s.resp, s.err
}

func newSeedCrawler(t *testing.T, picker seedPicker, lookup summonerLookup) *CrawlerV1 {
	t.Helper()
	loader, err := cfg.NewMockLoader()
	require.NoError(t, err)
	config, err := loader.Load()
	require.NoError(t, err)
	logger, err := log.NewCslLogger()
	require.NoError(t, err)
	return &CrawlerV1{
		Logger: logger,
		Config: config,
		picker: picker,
		lookup: lookup,
	}
}

func TestSelectSeedFromFrontier(t *testing.T) {
	picker := &stubPicker{puuid: "puuid-random"}
	lookup := &stubLookup{}
	c := newSeedCrawler(t, picker, lookup)

	seed, err := c.selectSeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "puuid-random", seed)

	// Frontier còn summoner thì không gọi Riot API
	assert.Empty(t, lookup.names)
}

func TestSelectSeedColdStartFallsBackToDefault(t *testing.T) {
	picker := &stubPicker{err: gorm.ErrRecordNotFound}
	lookup := &stubLookup{resp: &riotapi.SummonerResponse{Puuid: "puuid-default", Name: "XkabutoX"}}
	c := newSeedCrawler(t, picker, lookup)

	seed, err := c.selectSeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "puuid-default", seed)

	// Cold start: tra cứu đúng default summoner trong config
	assert.Equal(t, []string{c.Config.RiotApi.DefaultSummoner}, lookup.names)
	assert.Equal(t, 1, picker.calls)
}

func TestSelectSeedDatabaseError(t *testing.T) {
	picker := &stubPicker{err: errors.New("connection refused")}
	lookup := &stubLookup{}
	c := newSeedCrawler(t, picker, lookup)

	_, err := c.selectSeed(context.Background())
	require.Error(t, err)

	// Lỗi database không phải frontier trống, không được fallback
	assert.Empty(t, lookup.names)
}

func TestSelectSeedDefaultLookupError(t *testing.T) {
	picker := &stubPicker{err: gorm.ErrRecordNotFound}
	lookup := &stubLookup{err: errors.New("riot api unavailable")}
	c := newSeedCrawler(t, picker, lookup)

	_, err := c.selectSeed(context.Background())
	assert.Error(t, err)
}
