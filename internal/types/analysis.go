// Package types provides type definitions for structured data used throughout the resume-feedback system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DimensionScore represents one evaluated dimension of a resume (clarity,
// role alignment, tone) as returned by the resume critic.
type DimensionScore struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// ResumeAnalysis represents the structured output of the resume-quality
// critic. It is externally supplied (LLM-derived); callers must treat its
// absence as "no resume score", never as a score of zero.
type ResumeAnalysis struct {
	OverallScore  int            `json:"overall_score"`
	Clarity       DimensionScore `json:"clarity"`
	RoleAlignment DimensionScore `json:"role_alignment"`
	Tone          DimensionScore `json:"tone"`
}

// ProjectRecommendation represents a project worth featuring for a given job,
// derived from a ScoredProject that cleared the relevance threshold.
type ProjectRecommendation struct {
	ProjectName    string   `json:"project_name"`
	RelevanceScore float64  `json:"relevance_score"`
	WhyBetter      string   `json:"why_better"`
	KeySkills      []string `json:"key_skills"`
	TechStack      []string `json:"tech_stack"`
}

// ImprovedProject represents a rewritten project description proposed by the
// phrasing collaborator.
type ImprovedProject struct {
	ProjectName      string   `json:"project_name"`
	ImprovedPoints   []string `json:"improved_points"`
	KeywordsAdded    []string `json:"keywords_added"`
	ImprovementNotes string   `json:"improvement_notes,omitempty"`
}

// AnalysisResult is the composite output of one full analysis run.
// Constructed once per invocation and never mutated afterward.
type AnalysisResult struct {
	OverallScore           int                     `json:"overall_score"`
	ResumeAnalysis         *ResumeAnalysis         `json:"resume_analysis,omitempty"`
	ProjectRecommendations []ProjectRecommendation `json:"project_recommendations"`
	MissingKeywords        []MissingKeyword        `json:"missing_keywords"`
	ImprovedProjects       []ImprovedProject       `json:"improved_projects,omitempty"`
	ProcessingTime         float64                 `json:"processing_time"`
	Metadata               map[string]any          `json:"metadata,omitempty"`
}
