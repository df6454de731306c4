package ui

import (
	"net/http"

	"github.com/thep200/riot-crawler/internal/model"
)

//
type MatchView struct {
	MatchId   string `json:"matchId"`
	StartDate string `json:"startDate"`
	QueueId   int    `json:"queueId"`
}

//
func (h *Handler) getMatches(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	offset := (page - 1) * pageSize
	query := h.db.Offset(offset).Limit(pageSize).Order("start_date DESC")

	var matches []model.Match
	if result := query.Find(&matches); result.Error != nil {
		h.Logger.Error(r.Context(), "Failed to fetch matches: %v", result.Error)
		http.Error(w, "Failed to fetch matches", http.StatusInternalServerError)
		return
	}

	var totalCount int64
	h.db.Model(&model.Match{}).Count(&totalCount)

	// Response format
	var views []MatchView
	for _, match := range matches {
		views = append(views, MatchView{
			MatchId:   match.MatchId,
			StartDate: match.StartDate.Format("2006-01-02 15:04:05"),
			QueueId:   match.QueueId,
		})
	}

	h.writeJSON(w, r, map[string]interface{}{
		"matches": views,
		"pagination": map[string]interface{}{
			"page":       page,
			"pageSize":   pageSize,
			"totalCount": totalCount,
			"totalPages": (totalCount + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
