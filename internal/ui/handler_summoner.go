package ui

import (
	"net/http"

	"github.com/thep200/riot-crawler/internal/model"
)

//
type SummonerView struct {
	Puuid              string `json:"puuid"`
	SummonerName       string `json:"summonerName"`
	IsSummonerAnalysed bool   `json:"isSummonerAnalysed"`
	CreatedAt          string `json:"createdAt"`
}

//
type HistoryView struct {
	MatchId      string  `json:"matchId"`
	Puuid        string  `json:"puuid"`
	BatchId      int64   `json:"batchId"`
	ChampionId   int64   `json:"championId"`
	TeamPosition string  `json:"teamPosition"`
	Team         *string `json:"team"`
	Win          bool    `json:"win"`
}

//
func (h *Handler) getSummoners(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	offset := (page - 1) * pageSize
	query := h.db.Offset(offset).Limit(pageSize).Order("created_at DESC")
	countQuery := h.db.Model(&model.Summoner{})

	// Lọc theo trạng thái phân tích (frontier = analysed=false)
	if analysed := r.URL.Query().Get("analysed"); analysed != "" {
		query = query.Where("is_summoner_analysed = ?", analysed == "true")
		countQuery = countQuery.Where("is_summoner_analysed = ?", analysed == "true")
	}

	// Search query
	if search := r.URL.Query().Get("search"); search != "" {
		search = "%" + search + "%"
		query = query.Where("summoner_name LIKE ?", search)
		countQuery = countQuery.Where("summoner_name LIKE ?", search)
	}

	var summoners []model.Summoner
	if result := query.Find(&summoners); result.Error != nil {
		h.Logger.Error(r.Context(), "Failed to fetch summoners: %v", result.Error)
		http.Error(w, "Failed to fetch summoners", http.StatusInternalServerError)
		return
	}

	var totalCount int64
	countQuery.Count(&totalCount)

	// Response format
	var views []SummonerView
	for _, summoner := range summoners {
		views = append(views, SummonerView{
			Puuid:              summoner.Puuid,
			SummonerName:       summoner.SummonerName,
			IsSummonerAnalysed: summoner.IsSummonerAnalysed,
			CreatedAt:          summoner.CreatedAt.Format("2006-01-02"),
		})
	}

	h.writeJSON(w, r, map[string]interface{}{
		"summoners": views,
		"pagination": map[string]interface{}{
			"page":       page,
			"pageSize":   pageSize,
			"totalCount": totalCount,
			"totalPages": (totalCount + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// getSummonerHistory trả về mọi dòng history của một summoner
func (h *Handler) getSummonerHistory(w http.ResponseWriter, r *http.Request) {
	puuid := r.URL.Query().Get("puuid")
	if puuid == "" {
		http.Error(w, "puuid is required", http.StatusBadRequest)
		return
	}

	var histories []model.SummonerHistory
	result := h.db.Where("puuid = ?", puuid).Order("batch_id DESC").Find(&histories)
	if result.Error != nil {
		h.Logger.Error(r.Context(), "Failed to fetch summoner history: %v", result.Error)
		http.Error(w, "Failed to fetch summoner history", http.StatusInternalServerError)
		return
	}

	var views []HistoryView
	for _, history := range histories {
		views = append(views, HistoryView{
			MatchId:      history.MatchId,
			Puuid:        history.Puuid,
			BatchId:      history.BatchId,
			ChampionId:   history.ChampionId,
			TeamPosition: history.TeamPosition,
			Team:         history.Team,
			Win:          history.Win,
		})
	}

	h.writeJSON(w, r, map[string]interface{}{
		"puuid":   puuid,
		"history": views,
	})
}
