package model

import (
	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
)

// Batch ghi lại seed nào được phân tích trong run nào.
// BatchId là epoch giây lúc bắt đầu ingest, dùng làm provenance chứ không
// phải uniqueness guarantee.
type Batch struct {
	Model
	BatchId          int64  `json:"batch_id" gorm:"column:batch_id;primaryKey;autoIncrement:false"`
	SummonerAnalysed string `json:"summoner_analysed" gorm:"column:summoner_analysed;type:varchar(100);primaryKey"`
}

func NewBatch(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Batch, error) {
	batch := &Batch{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return batch, nil
}

func (b *Batch) TableName() string {
	return "batch"
}
