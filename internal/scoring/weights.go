// Package scoring implements the deterministic relevance engine: per-project
// scoring against a job description, ranking, keyword-gap analysis, and the
// composite overall score.
package scoring

// Weights holds the tunable constants of the relevance engine. The defaults
// reproduce the established product behavior; they are grouped here so a
// caller can revise them without touching the algorithms.
type Weights struct {
	// KeywordWeight and SimilarityWeight blend the two per-project signals.
	// Keyword overlap dominates because job descriptions are keyword-dense
	// but prose-variable.
	KeywordWeight    float64
	SimilarityWeight float64

	// ProjectWeight and ResumeWeight blend project relevance with the
	// externally supplied resume-quality score.
	ProjectWeight float64
	ResumeWeight  float64

	// TopProjects is how many ranked projects feed the composite average.
	TopProjects int

	// HighImportanceRank is the job-keyword rank below which a missing
	// keyword is flagged high importance.
	HighImportanceRank int

	// JobKeywordCap limits job-description keyword extraction for gap
	// analysis; MissingKeywordCap truncates the missing list.
	JobKeywordCap     int
	MissingKeywordCap int

	// NeutralScore is returned when there is nothing to score at all.
	NeutralScore int

	// RecommendationThreshold is the minimum overall score for a project
	// to be surfaced as a recommendation.
	RecommendationThreshold float64
}

// DefaultWeights returns the standard weight set.
func DefaultWeights() Weights {
	return Weights{
		KeywordWeight:           0.7,
		SimilarityWeight:        0.3,
		ProjectWeight:           0.6,
		ResumeWeight:            0.4,
		TopProjects:             3,
		HighImportanceRank:      5,
		JobKeywordCap:           12,
		MissingKeywordCap:       10,
		NeutralScore:            70,
		RecommendationThreshold: 50,
	}
}
