package ui

import (
	"net/http"

	"github.com/thep200/riot-crawler/internal/model"
)

//
type BatchView struct {
	BatchId          int64  `json:"batchId"`
	SummonerAnalysed string `json:"summonerAnalysed"`
	CreatedAt        string `json:"createdAt"`
}

//
func (h *Handler) getBatches(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	offset := (page - 1) * pageSize
	query := h.db.Offset(offset).Limit(pageSize).Order("batch_id DESC")

	var batches []model.Batch
	if result := query.Find(&batches); result.Error != nil {
		h.Logger.Error(r.Context(), "Failed to fetch batches: %v", result.Error)
		http.Error(w, "Failed to fetch batches", http.StatusInternalServerError)
		return
	}

	var totalCount int64
	h.db.Model(&model.Batch{}).Count(&totalCount)

	// Response format
	var views []BatchView
	for _, batch := range batches {
		views = append(views, BatchView{
			BatchId:          batch.BatchId,
			SummonerAnalysed: batch.SummonerAnalysed,
			CreatedAt:        batch.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	h.writeJSON(w, r, map[string]interface{}{
		"batches": views,
		"pagination": map[string]interface{}{
			"page":       page,
			"pageSize":   pageSize,
			"totalCount": totalCount,
			"totalPages": (totalCount + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
