package model

import (
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

// SummonerHistory là fact table: một dòng cho mỗi người chơi trong mỗi trận.
// Composite key (match_id, puuid) — dòng đã ghi là bất biến, ingest lại là no-op.
type SummonerHistory struct {
	Model
	MatchId      string  `json:"match_id" gorm:"column:match_id;type:varchar(30);primaryKey"`
	Puuid        string  `json:"puuid" gorm:"column:puuid;type:varchar(100);primaryKey"`
	BatchId      int64   `json:"batch_id" gorm:"column:batch_id;not null"`
	ChampionId   int64   `json:"champion_id" gorm:"column:champion_id;not null"`
	TeamPosition string  `json:"team_position" gorm:"column:team_position;type:varchar(10)"`
	Team         *string `json:"team" gorm:"column:team;type:varchar(4)"`
	Win          bool    `json:"win" gorm:"column:win"`
}

func NewSummonerHistory(config *cfg.Config, logger log.Logger, db *db.Mysql) (*SummonerHistory, error) {
	history := &SummonerHistory{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return history, nil
}

func (h *SummonerHistory) TableName() string {
	return "summoner_history"
}
