package crawler

import "time"

type Crawler interface {
	Crawl() bool
}

// RunResult tổng kết một run: seed nào được phân tích và bao nhiêu dòng
// đã đưa vào database.
type RunResult struct {
	BatchId          int64
	SummonerAnalysed string
	Summoners        int
	Champions        int
	Matches          int
	HistoryRows      int
	StartTime        time.Time
	EndTime          time.Time
}
