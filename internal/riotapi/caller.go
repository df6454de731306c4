// Gói riotapi cung cấp một caller cho Riot API, để lấy dữ liệu match history.
// Nó gọi match-v5 để lấy danh sách match id và chi tiết trận đấu,
// và summoner-v4 để tra cứu summoner theo tên.
// Mọi response đều được đưa qua rate limiter trước khi trả về,
// vì Riot báo usage hiện tại qua header trên từng response.

package riotapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/limiter"
	"github.com/thep200/riot-crawler/pkg/log"
)

type Caller struct {
	Logger  log.Logger
	Config  *cfg.Config
	Limiter *limiter.RateLimiter
}

func NewCaller(logger log.Logger, config *cfg.Config, rateLimiter *limiter.RateLimiter) *Caller {
	return &Caller{
		Logger:  logger,
		Config:  config,
		Limiter: rateLimiter,
	}
}

func (c *Caller) client() *http.Client {
	return &http.Client{
		Timeout: time.Duration(c.Config.RiotApi.RequestTimeout) * time.Second,
	}
}

// CallMatchIds gọi endpoint match-ids-by-puuid để lấy danh sách match id
// của một summoner, tùy chọn giới hạn bởi endTimestamp (epoch giây).
func (c *Caller) CallMatchIds(ctx context.Context, puuid string, count int, endTimestamp int64) ([]string, error) {
	matchIdsUrl := strings.ReplaceAll(c.Config.RiotApi.MatchIdsApiUrl, "{puuid}", puuid)

	params := url.Values{}
	params.Set("api_key", c.Config.RiotApi.ApiKey)
	params.Set("type", c.Config.RiotApi.MatchType)
	params.Set("start", "0")
	params.Set("count", strconv.Itoa(count))
	if endTimestamp > 0 {
		params.Set("endTime", strconv.FormatInt(endTimestamp, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, matchIdsUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Kiểm tra rate limit
	c.Limiter.Observe(ctx, resp.Header.Get(limiter.RateLimitHeader))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot received response: %v", resp.Status)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, err
	}

	return matchIds, nil
}

// CallMatch gọi endpoint match detail cho một match id cụ thể
func (c *Caller) CallMatch(ctx context.Context, matchId string) (*MatchResponse, error) {
	matchUrl := strings.ReplaceAll(c.Config.RiotApi.MatchApiUrl, "{match_id}", matchId)

	params := url.Values{}
	params.Set("api_key", c.Config.RiotApi.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, matchUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Kiểm tra rate limit
	c.Limiter.Observe(ctx, resp.Header.Get(limiter.RateLimitHeader))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot received response: %v", resp.Status)
	}

	match := &MatchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(match); err != nil {
		return nil, err
	}

	return match, nil
}

// CallSummonerByName tra cứu một summoner theo display name.
// Chỉ dùng cho cold start khi database chưa có summoner nào để phân tích.
func (c *Caller) CallSummonerByName(ctx context.Context, name string) (*SummonerResponse, error) {
	summonerUrl := strings.ReplaceAll(c.Config.RiotApi.SummonerApiUrl, "{name}", url.PathEscape(name))

	params := url.Values{}
	params.Set("api_key", c.Config.RiotApi.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, summonerUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Kiểm tra rate limit
	c.Limiter.Observe(ctx, resp.Header.Get(limiter.RateLimitHeader))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot received response: %v", resp.Status)
	}

	summoner := &SummonerResponse{}
	if err := json.NewDecoder(resp.Body).Decode(summoner); err != nil {
		return nil, err
	}

	return summoner, nil
}
