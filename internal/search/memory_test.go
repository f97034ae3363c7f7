package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMemorySearcher(t *testing.T) *MemorySearcher {
	t.Helper()
	s := NewMemorySearcher()
	err := s.Store(context.Background(), "resume-1", []Chunk{
		{ID: "c1", Content: "Built a streaming ETL pipeline in Go with Kafka and Postgres"},
		{ID: "c2", Content: "Designed a React dashboard for fleet telemetry"},
		{ID: "c3", Content: "Tuned Postgres queries and added partitioned tables"},
	})
	require.NoError(t, err)
	return s
}

func TestMemorySearcher_RanksByOverlap(t *testing.T) {
	s := seedMemorySearcher(t)

	matches, err := s.Query(context.Background(), "resume-1", "Postgres pipeline in Go", 5)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// c1 shares postgres, pipeline, in, and go; c3 only postgres.
	assert.Equal(t, "c1", matches[0].ID)
	assert.Equal(t, "c3", matches[1].ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMemorySearcher_TopKLimitsResults(t *testing.T) {
	s := seedMemorySearcher(t)

	matches, err := s.Query(context.Background(), "resume-1", "Postgres Go React fleet", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMemorySearcher_NamespaceIsolation(t *testing.T) {
	s := seedMemorySearcher(t)

	matches, err := s.Query(context.Background(), "resume-2", "Postgres", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemorySearcher_ClearRemovesNamespace(t *testing.T) {
	s := seedMemorySearcher(t)

	require.NoError(t, s.Clear(context.Background(), "resume-1"))
	matches, err := s.Query(context.Background(), "resume-1", "Postgres", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemorySearcher_AssignsChunkIDs(t *testing.T) {
	s := NewMemorySearcher()
	err := s.Store(context.Background(), "ns", []Chunk{{Content: "Go service monitoring"}})
	require.NoError(t, err)

	matches, err := s.Query(context.Background(), "ns", "monitoring", 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.NotEmpty(t, matches[0].ID)
}

func TestMemorySearcher_EmptyQueryReturnsNothing(t *testing.T) {
	s := seedMemorySearcher(t)

	matches, err := s.Query(context.Background(), "resume-1", "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
