package scoring

import (
	"strings"

	"github.com/therrshan/resume-feedback/internal/types"
)

// JobKeywords extracts the salient keywords of a job description, capped at
// the configured limit.
func (e *Engine) JobKeywords(jobDescription string) []string {
	return e.vocab.Extract(jobDescription, e.weights.JobKeywordCap)
}

// CoveredKeywords builds the set of job keywords already evidenced by the
// given text (typically the resume plus all project descriptions). A keyword
// counts as covered when it appears as a substring of the lowercased text.
func CoveredKeywords(jobKeywords []string, text string) map[string]struct{} {
	lower := strings.ToLower(text)
	covered := make(map[string]struct{})
	for _, keyword := range jobKeywords {
		if strings.Contains(lower, keyword) {
			covered[keyword] = struct{}{}
		}
	}
	return covered
}

// MissingKeywords returns the job keywords absent from the covered set, in
// salience order, capped at the configured limit. Importance follows the
// keyword's rank in the job keyword list, not its position among the gaps: a
// gap is high importance only when the job ranks it in the top slots.
func (e *Engine) MissingKeywords(jobDescription string, covered map[string]struct{}) []types.MissingKeyword {
	missing := make([]types.MissingKeyword, 0, e.weights.MissingKeywordCap)
	for rank, keyword := range e.JobKeywords(jobDescription) {
		if _, found := covered[keyword]; found {
			continue
		}
		importance := types.ImportanceMedium
		if rank < e.weights.HighImportanceRank {
			importance = types.ImportanceHigh
		}
		missing = append(missing, types.MissingKeyword{
			Keyword:    keyword,
			Importance: importance,
			Category:   "Technical",
		})
		if len(missing) >= e.weights.MissingKeywordCap {
			break
		}
	}
	return missing
}
