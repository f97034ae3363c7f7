package scoring

import (
	"math"

	"github.com/therrshan/resume-feedback/internal/types"
)

// CombineScores blends the strongest project scores with an overall resume
// score into a single integer in [0, 100].
//
// The project component is the mean of the top scoring projects, rounded to
// the nearest integer. When a resume score is available the two components
// are blended by the configured weights; when resumeScore is nil the project
// component stands alone. With no scored projects the resume score is
// returned as-is, falling back to the neutral score when that is also absent.
func (e *Engine) CombineScores(ranked []types.ScoredProject, resumeScore *int) int {
	if len(ranked) == 0 {
		if resumeScore != nil {
			return clampInt(*resumeScore)
		}
		return e.weights.NeutralScore
	}

	top := ranked
	if len(top) > e.weights.TopProjects {
		top = top[:e.weights.TopProjects]
	}

	sum := 0.0
	for _, project := range top {
		sum += project.OverallScore
	}
	projectComponent := int(math.Round(sum / float64(len(top))))

	if resumeScore == nil {
		return clampInt(projectComponent)
	}

	blended := e.weights.ProjectWeight*float64(projectComponent) + e.weights.ResumeWeight*float64(*resumeScore)
	return clampInt(int(math.Round(blended)))
}

func clampInt(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
