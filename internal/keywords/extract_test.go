package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyText(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.Empty(t, vocab.Extract("", 25))
	assert.Empty(t, vocab.Extract("   \n\t ", 25))
}

func TestExtract_ShortTextSkipsRanking(t *testing.T) {
	vocab := DefaultVocabulary()

	// Fewer than five qualifying tokens: returns the normalized token list as-is.
	result := vocab.Extract("distributed caching layer", 25)
	assert.Equal(t, []string{"distributed", "caching", "layer"}, result)
}

func TestExtract_TechnicalTermsComeFirst(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "We build invoice pipelines in Python with Docker containers. " +
		"Invoice accuracy matters, invoice latency matters more."
	result := vocab.Extract(text, 25)

	require.NotEmpty(t, result)
	assert.Equal(t, "python", result[0])
	assert.Equal(t, "docker", result[1])
	assert.Contains(t, result, "invoice")
}

func TestExtract_TechnicalTermsInDiscoveryOrder(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "Kubernetes first here, then Python, then AWS, and Kubernetes again, plus more words to rank."
	result := vocab.Extract(text, 25)

	idx := func(term string) int {
		for i, r := range result {
			if r == term {
				return i
			}
		}
		return -1
	}

	require.Contains(t, result, "kubernetes")
	require.Contains(t, result, "python")
	require.Contains(t, result, "aws")
	assert.Less(t, idx("kubernetes"), idx("python"))
	assert.Less(t, idx("python"), idx("aws"))
}

func TestExtract_StopwordsRemoved(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "The team has strong experience with the required skills and the responsibilities of the role in production systems engineering today"
	result := vocab.Extract(text, 25)

	assert.NotContains(t, result, "the")
	assert.NotContains(t, result, "experience")
	assert.NotContains(t, result, "skills")
	assert.NotContains(t, result, "responsibilities")
}

func TestExtract_LemmatizationCollapsesInflections(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "developing developed develops deployment deployments testing tested pipelines pipeline"
	result := vocab.Extract(text, 25)

	develops := 0
	for _, term := range result {
		if term == "develop" {
			develops++
		}
	}
	assert.Equal(t, 1, develops, "inflections should collapse to a single base form")
	assert.NotContains(t, result, "developing")
	assert.NotContains(t, result, "deployments")
}

func TestExtract_RespectsMaxKeywords(t *testing.T) {
	vocab := DefaultVocabulary()

	var sb strings.Builder
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "gradle", "hadoop", "ingest", "jupyter"}
	for _, w := range words {
		sb.WriteString(w + " " + w + " ")
	}

	result := vocab.Extract(sb.String(), 5)
	assert.Len(t, result, 5)
}

func TestExtract_Deterministic(t *testing.T) {
	vocab := DefaultVocabulary()

	text := "Python engineer building REST APIs with Docker, Kubernetes and PostgreSQL. " +
		"Streaming pipelines, caching, monitoring and deployment automation."

	first := vocab.Extract(text, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, vocab.Extract(text, 20))
	}
}

func TestExtract_NoDuplicatesAcrossGroups(t *testing.T) {
	vocab := DefaultVocabulary()

	// "python" appears often enough to also rank by frequency; it must not
	// appear twice.
	text := "python python python services orchestration scheduling batch processing"
	result := vocab.Extract(text, 25)

	counts := make(map[string]int)
	for _, term := range result {
		counts[term]++
	}
	for term, count := range counts {
		assert.Equal(t, 1, count, "duplicate term %q", term)
	}
}

func TestExtractTechnical_FirstSeenOrder(t *testing.T) {
	vocab := DefaultVocabulary()

	terms := vocab.ExtractTechnical("Docker before Python before docker again")
	assert.Equal(t, []string{"docker", "python"}, terms)
}

func TestExtractTechnical_CompoundNames(t *testing.T) {
	vocab := DefaultVocabulary()

	terms := vocab.ExtractTechnical("Frontend in node.js with CI/CD on AWS")
	assert.Contains(t, terms, "node.js")
	assert.Contains(t, terms, "ci/cd")
	assert.Contains(t, terms, "aws")
}

func TestExtractSimple_Fallback(t *testing.T) {
	vocab := DefaultVocabulary()

	result := vocab.ExtractSimple("alpha alpha beta beta beta gamma", 2)
	assert.Equal(t, []string{"beta", "alpha"}, result)

	assert.Empty(t, vocab.ExtractSimple("", 10))
}

func TestLemmatize(t *testing.T) {
	cases := map[string]string{
		"developing": "develop",
		"developed":  "develop",
		"develops":   "develop",
		"planning":   "plan",
		"libraries":  "library",
		"deployed":   "deploy",
		"pipelines":  "pipeline",
		"process":    "process",
		"calling":    "call",
		"rust":       "rust",
	}
	for input, want := range cases {
		assert.Equal(t, want, Lemmatize(input), "Lemmatize(%q)", input)
	}
}
