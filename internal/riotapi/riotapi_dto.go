// Gói dto cung cấp các đối tượng truyền dữ liệu cho dự án
// Chuyển đổi phản hồi match-v5 và summoner-v4 của Riot thành cấu trúc

package riotapi

type ParticipantResponse struct {
	Puuid        string `json:"puuid"`
	SummonerName string `json:"summonerName"`
	ChampionId   int64  `json:"championId"`
	ChampionName string `json:"championName"`
	TeamPosition string `json:"teamPosition"`
	TeamId       int    `json:"teamId"`
	Win          bool   `json:"win"`
	// Có thể thêm nhiều trường tại đây
}

type MatchInfo struct {
	GameStartTimestamp int64                 `json:"gameStartTimestamp"`
	QueueId            int                   `json:"queueId"`
	Participants       []ParticipantResponse `json:"participants"`
}

type MatchResponse struct {
	Info MatchInfo `json:"info"`
}

type SummonerResponse struct {
	Puuid string `json:"puuid"`
	Name  string `json:"name"`
}
