package scoring

import (
	"sort"

	"github.com/therrshan/resume-feedback/internal/types"
)

// RankProjects scores every project against the job description and returns
// them sorted by overall score, highest first. Projects with equal scores
// keep their input order. The result is truncated to at most topK entries;
// topK of zero returns an empty slice, and a negative topK returns all
// projects.
func (e *Engine) RankProjects(projects []types.Project, jobDescription string, topK int) []types.ScoredProject {
	scored := make([]types.ScoredProject, 0, len(projects))
	for i := range projects {
		scored = append(scored, e.ScoreProject(&projects[i], jobDescription))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].OverallScore > scored[j].OverallScore
	})

	if topK >= 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
