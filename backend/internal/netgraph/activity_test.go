package netgraph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeActivity_CountsAndMostRecent(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	records := []ActivityRecord{
		{ID: "a1", ContactID: "c1", OccurredAt: base},
		{ID: "a2", ContactID: "c1", OccurredAt: base.AddDate(0, 0, 10)},
		{ID: "a3", ContactID: "c1", OccurredAt: base.AddDate(0, 0, 5)},
		{ID: "a4", ContactID: "c2", OccurredAt: base.AddDate(0, 1, 0)},
	}

	summaries := SummarizeActivity(records)

	require.Contains(t, summaries, "c1")
	assert.Equal(t, 3, summaries["c1"].Count)
	assert.Equal(t, base.AddDate(0, 0, 10), *summaries["c1"].MostRecent)

	require.Contains(t, summaries, "c2")
	assert.Equal(t, 1, summaries["c2"].Count)
}

func TestSummarizeActivity_TieKeepsDate(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	records := []ActivityRecord{
		{ID: "a1", ContactID: "c1", OccurredAt: ts},
		{ID: "a2", ContactID: "c1", OccurredAt: ts},
	}

	summaries := SummarizeActivity(records)
	assert.Equal(t, 2, summaries["c1"].Count)
	assert.Equal(t, ts, *summaries["c1"].MostRecent)
}

func TestSummarizeActivity_NoActivity(t *testing.T) {
	summaries := SummarizeActivity(nil)
	assert.Empty(t, summaries)

	// Absent contact yields the zero summary: count 0, no date.
	s := summaries["unknown"]
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.MostRecent)
}
