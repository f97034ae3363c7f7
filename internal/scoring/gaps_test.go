package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therrshan/resume-feedback/internal/types"
)

const gapJobDescription = `We are hiring a backend engineer to build data
pipelines in Python. Experience with Docker, Kubernetes, Terraform, and
PostgreSQL is required. Familiarity with Kafka, Redis, GraphQL, and
Elasticsearch is a strong plus. The team deploys to AWS.`

func TestJobKeywords_Capped(t *testing.T) {
	engine := NewDefaultEngine()
	got := engine.JobKeywords(gapJobDescription)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), engine.Weights().JobKeywordCap)
}

func TestCoveredKeywords_SubstringMatch(t *testing.T) {
	covered := CoveredKeywords(
		[]string{"python", "docker", "kafka"},
		"Resume text: shipped Python services, containerized with Docker.",
	)
	assert.Contains(t, covered, "python")
	assert.Contains(t, covered, "docker")
	assert.NotContains(t, covered, "kafka")
}

func TestMissingKeywords_ExcludesCovered(t *testing.T) {
	engine := NewDefaultEngine()
	jobKeywords := engine.JobKeywords(gapJobDescription)
	require.NotEmpty(t, jobKeywords)

	covered := map[string]struct{}{}
	for _, keyword := range jobKeywords {
		covered[keyword] = struct{}{}
	}

	assert.Empty(t, engine.MissingKeywords(gapJobDescription, covered))
}

func TestMissingKeywords_ImportanceAndCategory(t *testing.T) {
	engine := NewDefaultEngine()
	jobKeywords := engine.JobKeywords(gapJobDescription)
	require.NotEmpty(t, jobKeywords)

	rankOf := make(map[string]int, len(jobKeywords))
	for rank, keyword := range jobKeywords {
		rankOf[keyword] = rank
	}

	missing := engine.MissingKeywords(gapJobDescription, nil)
	require.NotEmpty(t, missing)
	assert.LessOrEqual(t, len(missing), engine.Weights().MissingKeywordCap)

	for _, gap := range missing {
		assert.Equal(t, "Technical", gap.Category)
		rank, found := rankOf[gap.Keyword]
		require.True(t, found)
		if rank < engine.Weights().HighImportanceRank {
			assert.Equal(t, types.ImportanceHigh, gap.Importance)
		} else {
			assert.Equal(t, types.ImportanceMedium, gap.Importance)
		}
	}
}

func TestMissingKeywords_CoveredTopRanksDoNotPromoteLowerGaps(t *testing.T) {
	engine := NewDefaultEngine()
	jobKeywords := engine.JobKeywords(gapJobDescription)
	highRank := engine.Weights().HighImportanceRank
	require.Greater(t, len(jobKeywords), highRank)

	// Cover the highest-ranked job keywords so every remaining gap sits
	// below the high-importance cutoff.
	covered := map[string]struct{}{}
	for _, keyword := range jobKeywords[:highRank] {
		covered[keyword] = struct{}{}
	}

	missing := engine.MissingKeywords(gapJobDescription, covered)
	require.NotEmpty(t, missing)
	for _, gap := range missing {
		assert.Equal(t, types.ImportanceMedium, gap.Importance,
			"gap %q ranks below the top %d job keywords", gap.Keyword, highRank)
	}
}

func TestMissingKeywords_Deterministic(t *testing.T) {
	engine := NewDefaultEngine()
	first := engine.MissingKeywords(gapJobDescription, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.MissingKeywords(gapJobDescription, nil))
	}
}
