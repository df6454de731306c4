package model

import (
	"time"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

type Match struct {
	Model
	MatchId   string    `json:"match_id" gorm:"column:match_id;type:varchar(30);primaryKey"`
	StartDate time.Time `json:"start_date" gorm:"column:start_date"`
	QueueId   int       `json:"queue_id" gorm:"column:queue_id"`
}

func NewMatch(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Match, error) {
	match := &Match{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return match, nil
}

func (m *Match) TableName() string {
	return "match"
}
