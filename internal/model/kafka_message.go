package model

// BatchMessage là cấu trúc dữ liệu Batch gửi tới Kafka sau một run thành công
type BatchMessage struct {
	BatchId          int64  `json:"batch_id"`
	SummonerAnalysed string `json:"summoner_analysed"`
	Summoners        int    `json:"summoners"`
	Champions        int    `json:"champions"`
	Matches          int    `json:"matches"`
	HistoryRows      int    `json:"history_rows"`
	DurationSeconds  int64  `json:"duration_seconds"`
}
