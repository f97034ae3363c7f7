// Package types provides type definitions for structured data used throughout the resume-feedback system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Importance levels for missing keywords
const (
	// ImportanceHigh marks keywords ranked in the top positions of the job description
	ImportanceHigh = "high"
	// ImportanceMedium marks all other missing keywords
	ImportanceMedium = "medium"
)

// ScoredProject represents the relevance of one project to a job description.
// All scores are percentages clamped to [0, 100]; OverallScore carries one
// decimal place.
type ScoredProject struct {
	ProjectName     string   `json:"project_name"`
	OverallScore    float64  `json:"overall_score"`
	KeywordScore    float64  `json:"keyword_score"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	TechStack       []string `json:"tech_stack"`
}

// MissingKeyword represents a job-description keyword absent from the
// candidate's projects.
type MissingKeyword struct {
	Keyword    string `json:"keyword"`
	Importance string `json:"importance"`
	Category   string `json:"category"`
}
