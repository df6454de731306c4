package crawler

import (
	"context"
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/internal/riotapi"
	"github.com/thep200/riot-crawler/pkg/log"
)

// ParticipantRow là một dòng dữ liệu phẳng: một người chơi trong một trận,
// kèm theo các thuộc tính của trận (start date, queue, match id).
type ParticipantRow struct {
	Puuid        string
	SummonerName string
	ChampionId   int64
	ChampionName string
	TeamPosition string
	TeamId       int
	Win          bool
	StartDate    time.Time
	QueueId      int
	MatchId      string
}

// historyFetcher cho phép thay Fetcher thật bằng stub trong test
type historyFetcher interface {
	FetchHistory(ctx context.Context, puuid string, count int, endTimestamp int64) ([]ParticipantRow, error)
}

// Fetcher lấy match history của một summoner và flatten participants
// của từng trận thành các ParticipantRow.
type Fetcher struct {
	Logger log.Logger
	Config *cfg.Config
	Caller *riotapi.Caller
}

func NewFetcher(logger log.Logger, config *cfg.Config, caller *riotapi.Caller) *Fetcher {
	return &Fetcher{
		Logger: logger,
		Config: config,
		Caller: caller,
	}
}

// FetchHistory lấy count trận ranked gần nhất của một summoner.
// endTimestamp > 0 giới hạn history "tính đến" thời điểm đó (epoch giây),
// dùng khi expand neighbor theo thời điểm gặp nhau thay vì hiện tại.
// Thứ tự kết quả theo đúng thứ tự match id mà API trả về.
func (f *Fetcher) FetchHistory(ctx context.Context, puuid string, count int, endTimestamp int64) ([]ParticipantRow, error) {
	matchIds, err := f.Caller.CallMatchIds(ctx, puuid, count, endTimestamp)
	if err != nil {
		return nil, err
	}

	rows := make([]ParticipantRow, 0, len(matchIds)*10)
	for _, matchId := range matchIds {
		match, err := f.Caller.CallMatch(ctx, matchId)
		if err != nil {
			// Một trận lỗi chỉ mất dữ liệu trận đó, không làm hỏng cả fetch
			f.Logger.Error(ctx, "Failed to fetch match %s: %v", matchId, err)
			continue
		}

		startDate := time.UnixMilli(match.Info.GameStartTimestamp)
		for _, participant := range match.Info.Participants {
			rows = append(rows, ParticipantRow{
				Puuid:        participant.Puuid,
				SummonerName: participant.SummonerName,
				ChampionId:   participant.ChampionId,
				ChampionName: participant.ChampionName,
				TeamPosition: participant.TeamPosition,
				TeamId:       participant.TeamId,
				Win:          participant.Win,
				StartDate:    startDate,
				QueueId:      match.Info.QueueId,
				MatchId:      matchId,
			})
		}
	}

	return rows, nil
}
