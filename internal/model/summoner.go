package model

import (
	"context"
	"errors"

	"github.com/thep200/riot-crawler/cfg"
	"github.com/thep200/riot-crawler/pkg/db"
	"github.com/thep200/riot-crawler/pkg/log"
	"gorm.io/gorm"
)

type Summoner struct {
	Model
	Puuid              string `json:"puuid" gorm:"column:puuid;type:varchar(100);primaryKey"`
	SummonerName       string `json:"summoner_name" gorm:"column:summoner_name;type:varchar(30)"`
	IsSummonerAnalysed bool   `json:"is_summoner_analysed" gorm:"column:is_summoner_analysed;not null;default:false"`
}

func NewSummoner(config *cfg.Config, logger log.Logger, db *db.Mysql) (*Summoner, error) {
	summoner := &Summoner{
		Model: Model{
			Config: config,
			Logger: logger,
			Mysql:  db,
		},
	}
	return summoner, nil
}

func (s *Summoner) TableName() string {
	return "summoner"
}

// RandomUnanalysed chọn ngẫu nhiên một summoner chưa được phân tích.
// Trả về gorm.ErrRecordNotFound khi frontier trống (cold start hoặc đã cạn).
func (s *Summoner) RandomUnanalysed(ctx context.Context) (string, error) {
	db, err := s.Mysql.Db()
	if err != nil {
		s.Logger.Error(ctx, "Failed to get database connection: %v", err)
		return "", err
	}

	// Tie-break ngẫu nhiên để traversal không bị kẹt ở một vùng của graph
	var summoner Summoner
	if err := db.Where("is_summoner_analysed = ?", false).Order("RAND()").Take(&summoner).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.Logger.Error(ctx, "Failed to select unanalysed summoner: %v", err)
		}
		return "", err
	}

	return summoner.Puuid, nil
}

// MarkAnalysed đánh dấu một summoner đã được phân tích xong.
// Cờ chỉ đi một chiều false -> true, pipeline không bao giờ reset lại.
func (s *Summoner) MarkAnalysed(tx *gorm.DB, puuid string) error {
	return tx.Model(&Summoner{}).Where("puuid = ?", puuid).Update("is_summoner_analysed", true).Error
}
