package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therrshan/resume-feedback/internal/types"
)

// MockClient implements Client for testing
type MockClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier ModelTier) (string, error)
}

func (m *MockClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockClient) GetModel(_ ModelTier) string { return "mock-model" }

func (m *MockClient) Close() error { return nil }

const validAnalysisJSON = `{
	"overall_score": 78,
	"clarity": {"score": 82, "feedback": "Well structured resume.", "suggestions": ["Tighten the summary."]},
	"role_alignment": {"score": 74, "feedback": "Good coverage of required skills.", "suggestions": ["Mention Docker."]},
	"tone": {"score": 80, "feedback": "Professional throughout.", "suggestions": []}
}`

func TestAnalyzeResume_Success(t *testing.T) {
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier ModelTier) (string, error) {
			assert.Equal(t, TierStandard, tier)
			assert.Contains(t, prompt, "resume analyst")
			return validAnalysisJSON, nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume text", "job description")
	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, 78, analysis.OverallScore)
	assert.Equal(t, 82, analysis.Clarity.Score)
	assert.Equal(t, 74, analysis.RoleAlignment.Score)
	assert.Equal(t, 80, analysis.Tone.Score)
	assert.Contains(t, analysis.Clarity.Suggestions, "Tighten the summary.")
}

func TestAnalyzeResume_MarkdownWrappedResponse(t *testing.T) {
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return "```json\n" + validAnalysisJSON + "\n```", nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 78, analysis.OverallScore)
}

func TestAnalyzeResume_APIError(t *testing.T) {
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	assert.Nil(t, analysis)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeResume_RescuesOverallScore(t *testing.T) {
	// Truncated JSON: unparseable, but the overall score is present.
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return `{"overall_score": 65, "clarity": {"score": 6`, nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	require.NoError(t, err)
	require.NotNil(t, analysis)
	assert.Equal(t, 65, analysis.OverallScore)
	assert.Equal(t, 60, analysis.Clarity.Score)
	assert.Equal(t, 65, analysis.RoleAlignment.Score)
	assert.Equal(t, 55, analysis.Tone.Score)
}

func TestAnalyzeResume_UnusableResponse(t *testing.T) {
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return "I could not analyze this resume.", nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	assert.Nil(t, analysis)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeResume_SchemaViolation(t *testing.T) {
	// Parses as JSON but lacks the required dimensions.
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return `{"summary": "looks fine"}`, nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	assert.Nil(t, analysis)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeResume_ClampsScores(t *testing.T) {
	mockClient := &MockClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ ModelTier) (string, error) {
			return `{
				"overall_score": 95,
				"clarity": {"score": 100, "feedback": "ok", "suggestions": []},
				"role_alignment": {"score": 0, "feedback": "ok", "suggestions": []},
				"tone": {"score": 88, "feedback": "ok", "suggestions": []}
			}`, nil
		},
	}

	analysis, err := AnalyzeResume(context.Background(), mockClient, "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.Clarity.Score)
	assert.Equal(t, 0, analysis.RoleAlignment.Score)
}

func TestRescueAnalysis_NoScore(t *testing.T) {
	assert.Nil(t, rescueAnalysis("no json here"))
}

func TestClampAnalysis(t *testing.T) {
	analysis := &types.ResumeAnalysis{
		OverallScore:  150,
		Clarity:       types.DimensionScore{Score: -20},
		RoleAlignment: types.DimensionScore{Score: 50},
		Tone:          types.DimensionScore{Score: 101},
	}
	clampAnalysis(analysis)
	assert.Equal(t, 100, analysis.OverallScore)
	assert.Equal(t, 0, analysis.Clarity.Score)
	assert.Equal(t, 50, analysis.RoleAlignment.Score)
	assert.Equal(t, 100, analysis.Tone.Score)
}
