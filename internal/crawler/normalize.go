// Normalizer: reshape batch các ParticipantRow thành các projection quan hệ.
// Toàn bộ là pure function, không I/O.

package crawler

import (
	"github.com/thep200/riot-crawler/internal/model"
)

// Projections là năm row-set sẵn sàng cho persist
type Projections struct {
	Batch     model.Batch
	Summoners []model.Summoner
	Champions []model.Champion
	Matches   []model.Match
	Histories []model.SummonerHistory
}

// TeamLabel chuyển team id số thành nhãn màu.
// Chỉ 100 và 200 có nhãn; giá trị khác trả về nil (giữ nguyên edge case,
// không ép về Blue/Red).
func TeamLabel(teamId int) *string {
	var label string
	switch teamId {
	case 100:
		label = "Blue"
	case 200:
		label = "Red"
	default:
		return nil
	}
	return &label
}

// BuildProjections chiếu batch các dòng participant vào bốn shape quan hệ
// cộng batch marker, de-duplicate theo natural key của từng bảng
// và đóng dấu batchId cho cả run.
func BuildProjections(rows []ParticipantRow, batchId int64, seedPuuid string) *Projections {
	projections := &Projections{
		Batch: model.Batch{
			BatchId:          batchId,
			SummonerAnalysed: seedPuuid,
		},
		Summoners: make([]model.Summoner, 0, len(rows)),
		Champions: make([]model.Champion, 0, len(rows)),
		Matches:   make([]model.Match, 0, len(rows)),
		Histories: make([]model.SummonerHistory, 0, len(rows)),
	}

	seenSummoners := make(map[string]bool, len(rows))
	seenChampions := make(map[string]bool, len(rows))
	seenMatches := make(map[string]bool, len(rows))
	seenHistories := make(map[string]bool, len(rows))

	for _, row := range rows {
		// Summoner directory, key puuid
		if !seenSummoners[row.Puuid] {
			seenSummoners[row.Puuid] = true
			projections.Summoners = append(projections.Summoners, model.Summoner{
				Puuid:        model.TruncateString(row.Puuid, 100),
				SummonerName: model.TruncateString(row.SummonerName, 30),
			})
		}

		// Champion directory, key champion_name
		if !seenChampions[row.ChampionName] {
			seenChampions[row.ChampionName] = true
			projections.Champions = append(projections.Champions, model.Champion{
				ChampionId:   row.ChampionId,
				ChampionName: model.TruncateString(row.ChampionName, 30),
			})
		}

		// Match directory, key match_id
		if !seenMatches[row.MatchId] {
			seenMatches[row.MatchId] = true
			projections.Matches = append(projections.Matches, model.Match{
				MatchId:   model.TruncateString(row.MatchId, 30),
				StartDate: row.StartDate,
				QueueId:   row.QueueId,
			})
		}

		// Fact table, composite key (match_id, puuid)
		historyKey := row.MatchId + "_" + row.Puuid
		if !seenHistories[historyKey] {
			seenHistories[historyKey] = true
			projections.Histories = append(projections.Histories, model.SummonerHistory{
				MatchId:      model.TruncateString(row.MatchId, 30),
				Puuid:        model.TruncateString(row.Puuid, 100),
				BatchId:      batchId,
				ChampionId:   row.ChampionId,
				TeamPosition: model.TruncateString(row.TeamPosition, 10),
				Team:         TeamLabel(row.TeamId),
				Win:          row.Win,
			})
		}
	}

	return projections
}
