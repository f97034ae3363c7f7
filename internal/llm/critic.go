package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/therrshan/resume-feedback/internal/prompts"
	"github.com/therrshan/resume-feedback/internal/schemas"
	"github.com/therrshan/resume-feedback/internal/types"
)

// Context window limits for the resume critic, in characters.
const (
	maxResumeChars = 3000
	maxJobChars    = 1000
)

var overallScorePattern = regexp.MustCompile(`"overall_score":\s*(\d+)`)

// AnalyzeResume asks the model to critique a resume against a job
// description across clarity, role alignment, and tone. Failures that the
// caller can proceed without (API errors, unusable responses) are reported
// wrapped in ErrUnavailable.
func AnalyzeResume(ctx context.Context, client Client, resumeText, jobDescription string) (*types.ResumeAnalysis, error) {
	if len(resumeText) > maxResumeChars {
		resumeText = resumeText[:maxResumeChars] + "..."
	}
	if len(jobDescription) > maxJobChars {
		jobDescription = jobDescription[:maxJobChars] + "..."
	}

	template := prompts.MustGet("analysis.json", "resume-analysis")
	prompt := prompts.Format(template, map[string]string{
		"ResumeContent":  resumeText,
		"JobDescription": jobDescription,
	})

	jsonResp, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("%w: resume analysis: %v", ErrUnavailable, err)
	}

	jsonResp = ExtractJSONObject(CleanJSONBlock(jsonResp))

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal([]byte(jsonResp), &analysis); err != nil {
		// Models occasionally emit truncated JSON; the overall score alone
		// is still worth salvaging.
		if rescued := rescueAnalysis(jsonResp); rescued != nil {
			return rescued, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, &ResponseError{
			Task:    "resume analysis",
			Message: "unparseable response",
			Cause:   err,
		})
	}

	if err := schemas.ValidateResumeAnalysis(jsonResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, &ResponseError{
			Task:    "resume analysis",
			Message: "response failed schema validation",
			Cause:   err,
		})
	}

	clampAnalysis(&analysis)
	return &analysis, nil
}

// rescueAnalysis builds a degraded analysis from the overall score when the
// full JSON did not parse. Returns nil when no score can be found.
func rescueAnalysis(text string) *types.ResumeAnalysis {
	match := overallScorePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	score, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	score = clampDimension(score)

	analysis := &types.ResumeAnalysis{
		OverallScore: score,
		Clarity: types.DimensionScore{
			Score:    clampDimension(score - 5),
			Feedback: "Analysis completed but the detailed breakdown was unusable.",
		},
		RoleAlignment: types.DimensionScore{
			Score:    score,
			Feedback: "Analysis completed but the detailed breakdown was unusable.",
		},
		Tone: types.DimensionScore{
			Score:    clampDimension(score - 10),
			Feedback: "Professional tone assumed.",
		},
	}
	return analysis
}

func clampAnalysis(analysis *types.ResumeAnalysis) {
	analysis.OverallScore = clampDimension(analysis.OverallScore)
	analysis.Clarity.Score = clampDimension(analysis.Clarity.Score)
	analysis.RoleAlignment.Score = clampDimension(analysis.RoleAlignment.Score)
	analysis.Tone.Score = clampDimension(analysis.Tone.Score)
}

func clampDimension(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
