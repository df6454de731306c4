package crawler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/limiter"
	"github.com/thep200/riot-crawler/internal/riotapi"
	"github.com/thep200/riot-crawler/pkg/log"
)

func newTestFetcher(t *testing.T, serverUrl string) *Fetcher {
	t.Helper()

	logger, err := log.NewCslLogger()
	require.NoError(t, err)

	config := &cfg.Config{
		RiotApi: cfg.RiotApi{
			ApiKey:          "test-key",
			MatchIdsApiUrl:  serverUrl + "/lol/match/v5/matches/by-puuid/{puuid}/ids",
			MatchApiUrl:     serverUrl + "/lol/match/v5/matches/{match_id}",
			MatchType:       "ranked",
			RequestTimeout:  5,
			SecondRateLimit: 20,
			MinuteRateLimit: 100,
		},
	}

	rateLimiter := limiter.NewRateLimiter(logger, config.RiotApi.SecondRateLimit, config.RiotApi.MinuteRateLimit)
	return NewFetcher(logger, config, riotapi.NewCaller(logger, config, rateLimiter))
}

func TestFetchHistoryFlattensParticipants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(limiter.RateLimitHeader, "1:1,1:120")

		switch {
		case strings.HasSuffix(r.URL.Path, "/ids"):
			json.NewEncoder(w).Encode([]string{"EUW1_1", "EUW1_2"})
		case strings.HasSuffix(r.URL.Path, "/EUW1_1"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"info": map[string]interface{}{
					"gameStartTimestamp": 1650000000000,
					"queueId":            420,
					"participants": []map[string]interface{}{
						{"puuid": "p1", "summonerName": "One", "championId": 266, "championName": "Aatrox", "teamPosition": "TOP", "teamId": 100, "win": true},
						{"puuid": "p2", "summonerName": "Two", "championId": 103, "championName": "Ahri", "teamPosition": "MIDDLE", "teamId": 200, "win": false},
					},
				},
			})
		default:
			// Trận thứ hai lỗi: chỉ mất dữ liệu trận đó
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL)
	rows, err := fetcher.FetchHistory(context.Background(), "p1", 5, 0)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "EUW1_1", rows[0].MatchId)
	assert.Equal(t, "Aatrox", rows[0].ChampionName)
	assert.Equal(t, 420, rows[0].QueueId)
	assert.Equal(t, time.UnixMilli(1650000000000), rows[0].StartDate)
	assert.Equal(t, "p2", rows[1].Puuid)
	assert.False(t, rows[1].Win)
}

func TestFetchHistoryListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(limiter.RateLimitHeader, "1:1,1:120")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL)
	_, err := fetcher.FetchHistory(context.Background(), "p1", 5, 0)
	assert.Error(t, err)
}
