package model

import (
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

// Champion là bảng danh mục append-only, tạo khi thấy champion lần đầu.
// Conflict key là champion_name theo đúng data model gốc.
type Champion struct {
	Model
	ChampionId   int64  `json:"champion_id" gorm:"column:champion_id;not null"`
	ChampionName string `json:"champion_name" gorm:"column:champion_name;type:varchar(30);primaryKey"`
}

func NewChampion(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Champion, error) {
	champion := &Champion{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return champion, nil
}

func (c *Champion) TableName() string {
	return "champion"
}
