package crawler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamLabel(t *testing.T) {
	blue := TeamLabel(100)
	require.NotNil(t, blue)
	assert.Equal(t, "Blue", *blue)

	red := TeamLabel(200)
	require.NotNil(t, red)
	assert.Equal(t, "Red", *red)

	// Giá trị khác 100/200 không được ép về Blue/Red
	assert.Nil(t, TeamLabel(0))
	assert.Nil(t, TeamLabel(300))
	assert.Nil(t, TeamLabel(-1))
}

func sampleRows() []ParticipantRow {
	start := time.Date(2024, 4, 1, 20, 0, 0, 0, time.UTC)
	return []ParticipantRow{
		{
			Puuid:        "puuid-a",
			SummonerName: "Player A",
			ChampionId:   266,
			ChampionName: "Aatrox",
			TeamPosition: "TOP",
			TeamId:       100,
			Win:          true,
			StartDate:    start,
			QueueId:      420,
			MatchId:      "EUW1_1",
		},
		{
			Puuid:        "puuid-b",
			SummonerName: "Player B",
			ChampionId:   103,
			ChampionName: "Ahri",
			TeamPosition: "MIDDLE",
			TeamId:       200,
			Win:          false,
			StartDate:    start,
			QueueId:      420,
			MatchId:      "EUW1_1",
		},
		// Cùng champion và cùng summoner xuất hiện ở trận thứ hai
		{
			Puuid:        "puuid-a",
			SummonerName: "Player A",
			ChampionId:   103,
			ChampionName: "Ahri",
			TeamPosition: "MIDDLE",
			TeamId:       200,
			Win:          false,
			StartDate:    start.Add(2 * time.Hour),
			QueueId:      420,
			MatchId:      "EUW1_2",
		},
	}
}

func TestBuildProjectionsDeduplicates(t *testing.T) {
	projections := BuildProjections(sampleRows(), 1700000000, "puuid-a")

	assert.Equal(t, int64(1700000000), projections.Batch.BatchId)
	assert.Equal(t, "puuid-a", projections.Batch.SummonerAnalysed)

	// 2 summoner distinct, 2 champion distinct theo tên, 2 match distinct
	assert.Len(t, projections.Summoners, 2)
	assert.Len(t, projections.Champions, 2)
	assert.Len(t, projections.Matches, 2)

	// Fact table: một dòng cho mỗi cặp (match_id, puuid)
	assert.Len(t, projections.Histories, 3)
	for _, history := range projections.Histories {
		assert.Equal(t, int64(1700000000), history.BatchId)
	}
}

func TestBuildProjectionsTeamDerivation(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, ParticipantRow{
		Puuid:     "puuid-c",
		TeamId:    300,
		MatchId:   "EUW1_3",
		StartDate: time.Now(),
	})

	projections := BuildProjections(rows, 1, "puuid-a")

	byKey := make(map[string]*string)
	for _, history := range projections.Histories {
		byKey[history.MatchId+"_"+history.Puuid] = history.Team
	}

	require.NotNil(t, byKey["EUW1_1_puuid-a"])
	assert.Equal(t, "Blue", *byKey["EUW1_1_puuid-a"])
	require.NotNil(t, byKey["EUW1_1_puuid-b"])
	assert.Equal(t, "Red", *byKey["EUW1_1_puuid-b"])
	assert.Nil(t, byKey["EUW1_3_puuid-c"])
}

func TestBuildProjectionsIdempotentInput(t *testing.T) {
	// Ingest cùng batch hai lần phải cho cùng số dòng trong mọi projection
	rows := sampleRows()
	doubled := append(append([]ParticipantRow{}, rows...), rows...)

	once := BuildProjections(rows, 42, "puuid-a")
	twice := BuildProjections(doubled, 42, "puuid-a")

	assert.Equal(t, len(once.Summoners), len(twice.Summoners))
	assert.Equal(t, len(once.Champions), len(twice.Champions))
	assert.Equal(t, len(once.Matches), len(twice.Matches))
	assert.Equal(t, len(once.Histories), len(twice.Histories))
}

func TestBuildProjectionsEmpty(t *testing.T) {
	projections := BuildProjections(nil, 42, "puuid-a")
	assert.Empty(t, projections.Summoners)
	assert.Empty(t, projections.Champions)
	assert.Empty(t, projections.Matches)
	assert.Empty(t, projections.Histories)
	assert.Equal(t, "puuid-a", projections.Batch.SummonerAnalysed)
}
