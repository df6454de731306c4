package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartCrawlBeforeInitialize(t *testing.T) {
	// Chưa Initialize thì config và mysql đều nil, StartCrawl phải từ chối
	// thay vì panic trong factory
	a := NewCrawlerAPI()

	err := a.StartCrawl("v1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
	assert.False(t, a.IsRunning())
}

func TestGetCrawlStatsBeforeAnyRun(t *testing.T) {
	a := NewCrawlerAPI()

	stats := a.GetCrawlStats()
	assert.False(t, stats.IsRunning)
	assert.Empty(t, stats.Version)
	assert.Zero(t, stats.BatchId)
}
