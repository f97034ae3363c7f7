package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therrshan/resume-feedback/internal/llm"
	"github.com/therrshan/resume-feedback/internal/search"
	"github.com/therrshan/resume-feedback/internal/types"
)

// routingClient implements llm.Client, answering by model tier so one mock
// serves the critic, categorizer, and phrasing collaborators at once.
type routingClient struct {
	byTier map[llm.ModelTier]string
	err    error
}

func (c *routingClient) GenerateContent(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
	return c.generate(tier)
}

func (c *routingClient) GenerateJSON(_ context.Context, _ string, tier llm.ModelTier) (string, error) {
	return c.generate(tier)
}

func (c *routingClient) generate(tier llm.ModelTier) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.byTier[tier], nil
}

func (c *routingClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (c *routingClient) Close() error { return nil }

const jobDescription = `We are hiring a backend engineer with strong Go and
Postgres experience. Kubernetes and Terraform knowledge is a plus. You will
build streaming data pipelines and observability tooling.`

func sampleProjects() []types.Project {
	return []types.Project{
		{
			Name:      "Telemetry Pipeline",
			TechStack: []string{"Go", "Postgres", "Kafka"},
			DescriptionPoints: []string{
				"Built streaming data pipelines ingesting fleet telemetry in Go.",
				"Stored aggregates in Postgres with partitioned tables.",
			},
		},
		{
			Name:      "Recipe Sharing App",
			TechStack: []string{"PHP", "MySQL"},
			DescriptionPoints: []string{
				"Maintained a recipe sharing website with user accounts.",
			},
		},
	}
}

func TestAnalyze_RequiresJobDescription(t *testing.T) {
	a := NewDeterministic()
	_, err := a.Analyze(context.Background(), Options{JobDescription: "   "})
	require.Error(t, err)
}

func TestAnalyze_DeterministicOnly(t *testing.T) {
	a := NewDeterministic()

	result, err := a.Analyze(context.Background(), Options{
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	})
	require.NoError(t, err)

	assert.Nil(t, result.ResumeAnalysis)
	assert.Empty(t, result.ImprovedProjects)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.NotEmpty(t, result.MissingKeywords)
	assert.Equal(t, 2, result.Metadata["projects_parsed"])

	// The Go/Postgres project clears the threshold, the PHP one does not.
	require.Len(t, result.ProjectRecommendations, 1)
	rec := result.ProjectRecommendations[0]
	assert.Equal(t, "Telemetry Pipeline", rec.ProjectName)
	assert.Greater(t, rec.RelevanceScore, 50.0)
	assert.Contains(t, rec.WhyBetter, "High relevance")
	assert.NotEmpty(t, rec.KeySkills)
}

func TestAnalyze_Deterministic_SameInputSameOutput(t *testing.T) {
	a := NewDeterministic()
	opts := Options{JobDescription: jobDescription, Projects: sampleProjects()}

	first, err := a.Analyze(context.Background(), opts)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.ProjectRecommendations, second.ProjectRecommendations)
	assert.Equal(t, first.MissingKeywords, second.MissingKeywords)
}

func TestAnalyze_WithLLMCollaborators(t *testing.T) {
	client := &routingClient{byTier: map[llm.ModelTier]string{
		llm.TierStandard: `{
			"overall_score": 78,
			"clarity": {"score": 82, "feedback": "Clear.", "suggestions": []},
			"role_alignment": {"score": 74, "feedback": "Aligned.", "suggestions": []},
			"tone": {"score": 80, "feedback": "Professional.", "suggestions": []}
		}`,
		llm.TierLite: `{"missing_keywords": [
			{"keyword": "kubernetes", "category": "Technical Skills", "importance": "high"}
		]}`,
		llm.TierAdvanced: `{"improved_projects": [{
			"project_name": "Telemetry Pipeline",
			"improved_points": ["Built Kubernetes-deployed streaming pipelines in Go."],
			"keywords_added": ["kubernetes"]
		}]}`,
	}}
	a := New(nil, client, nil)

	resumeText := strings.Repeat("Seasoned backend engineer shipping Go services. ", 3)
	result, err := a.Analyze(context.Background(), Options{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	})
	require.NoError(t, err)

	require.NotNil(t, result.ResumeAnalysis)
	assert.Equal(t, 78, result.ResumeAnalysis.OverallScore)

	require.NotEmpty(t, result.ImprovedProjects)
	assert.Equal(t, "Telemetry Pipeline", result.ImprovedProjects[0].ProjectName)

	// The categorizer's refinement lands on the matching gap; the rest
	// keep their deterministic values.
	var foundRefined bool
	for _, gap := range result.MissingKeywords {
		if strings.EqualFold(gap.Keyword, "kubernetes") {
			foundRefined = true
			assert.Equal(t, "Technical Skills", gap.Category)
			assert.Equal(t, types.ImportanceHigh, gap.Importance)
		} else {
			assert.Equal(t, "Technical", gap.Category)
		}
	}
	assert.True(t, foundRefined)
}

func TestAnalyze_ResumeScoreShiftsOverall(t *testing.T) {
	lowCritic := &routingClient{byTier: map[llm.ModelTier]string{
		llm.TierStandard: `{
			"overall_score": 10,
			"clarity": {"score": 10, "feedback": "Weak.", "suggestions": []},
			"role_alignment": {"score": 10, "feedback": "Weak.", "suggestions": []},
			"tone": {"score": 10, "feedback": "Weak.", "suggestions": []}
		}`,
	}}
	resumeText := strings.Repeat("Seasoned backend engineer shipping Go services. ", 3)
	opts := Options{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	}

	withCritic, err := New(nil, lowCritic, nil).Analyze(context.Background(), opts)
	require.NoError(t, err)
	withoutCritic, err := NewDeterministic().Analyze(context.Background(), opts)
	require.NoError(t, err)

	assert.Less(t, withCritic.OverallScore, withoutCritic.OverallScore)
}

func TestAnalyze_DegradesWhenLLMUnavailable(t *testing.T) {
	client := &routingClient{err: errors.New("quota exceeded")}
	a := New(nil, client, nil)

	result, err := a.Analyze(context.Background(), Options{
		ResumeText:     strings.Repeat("Backend engineer with Go experience. ", 3),
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	})
	require.NoError(t, err)

	assert.Nil(t, result.ResumeAnalysis)
	assert.Empty(t, result.ImprovedProjects)
	assert.NotEmpty(t, result.ProjectRecommendations)
	assert.NotEmpty(t, result.MissingKeywords)
}

func TestAnalyze_SkipsCriticForShortResume(t *testing.T) {
	client := &routingClient{byTier: map[llm.ModelTier]string{
		llm.TierStandard: `{"overall_score": 99}`,
	}}
	a := New(nil, client, nil)

	result, err := a.Analyze(context.Background(), Options{
		ResumeText:     "Too short.",
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	})
	require.NoError(t, err)
	assert.Nil(t, result.ResumeAnalysis)
}

func TestAnalyze_ParsesLaTeXProjects(t *testing.T) {
	latexContent := `
\resumeProjectHeading
  {\textbf{Telemetry Pipeline} $|$ \emph{Go, Postgres, Kafka}}{2024}
  \resumeItemListStart
    \resumeItem{Built streaming data pipelines ingesting telemetry in Go.}
  \resumeItemListEnd
`
	a := NewDeterministic()
	result, err := a.Analyze(context.Background(), Options{
		JobDescription: jobDescription,
		ProjectsLaTeX:  latexContent,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Metadata["projects_parsed"])
	require.NotEmpty(t, result.ProjectRecommendations)
	assert.Equal(t, "Telemetry Pipeline", result.ProjectRecommendations[0].ProjectName)
}

func TestAnalyze_UnparseableLaTeXDegrades(t *testing.T) {
	a := NewDeterministic()
	result, err := a.Analyze(context.Background(), Options{
		JobDescription: jobDescription,
		ProjectsLaTeX:  "plain text, no project headings",
	})
	require.NoError(t, err)
	assert.Empty(t, result.ProjectRecommendations)
	assert.Equal(t, 0, result.Metadata["projects_parsed"])
}

func TestAnalyze_RetrievalSupplement(t *testing.T) {
	a := New(nil, nil, search.NewMemorySearcher())

	result, err := a.Analyze(context.Background(), Options{
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
		Namespace:      "resume-1",
	})
	require.NoError(t, err)

	related, ok := result.Metadata["related_projects"].([]string)
	require.True(t, ok)
	assert.Contains(t, related, "Telemetry Pipeline")
}

func TestAnalyze_NoRetrievalWithoutNamespace(t *testing.T) {
	a := New(nil, nil, search.NewMemorySearcher())

	result, err := a.Analyze(context.Background(), Options{
		JobDescription: jobDescription,
		Projects:       sampleProjects(),
	})
	require.NoError(t, err)
	assert.NotContains(t, result.Metadata, "related_projects")
}
