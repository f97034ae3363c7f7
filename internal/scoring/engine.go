package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/therrshan/resume-feedback/internal/keywords"
	"github.com/therrshan/resume-feedback/internal/types"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Engine scores projects against job descriptions. It holds only the fixed
// vocabulary and weight tables, so a single Engine is safe to share across
// concurrent requests.
type Engine struct {
	vocab   *keywords.Vocabulary
	weights Weights
}

// NewEngine creates an Engine with the given vocabulary and weights.
func NewEngine(vocab *keywords.Vocabulary, weights Weights) *Engine {
	return &Engine{vocab: vocab, weights: weights}
}

// NewDefaultEngine creates an Engine with the default vocabulary and weights.
func NewDefaultEngine() *Engine {
	return NewEngine(keywords.DefaultVocabulary(), DefaultWeights())
}

// Weights returns the engine's weight table.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Vocabulary returns the engine's fixed vocabulary.
func (e *Engine) Vocabulary() *keywords.Vocabulary {
	return e.vocab
}

// ProjectKeywords returns the technical keywords of a project: its tech stack
// entries plus technical-term matches over its combined text, lowercased and
// deduplicated, tech stack first in authoring order.
func (e *Engine) ProjectKeywords(project *types.Project) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0, len(project.TechStack))

	for _, tech := range project.TechStack {
		normalized := strings.ToLower(strings.TrimSpace(tech))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	for _, term := range e.vocab.ExtractTechnical(project.SearchText()) {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		result = append(result, term)
	}

	return result
}

// ScoreProject computes the relevance of one project to a job description.
// Scores are clamped to [0, 100]; an empty job description yields all zeros.
func (e *Engine) ScoreProject(project *types.Project, jobDescription string) types.ScoredProject {
	jobLower := strings.ToLower(jobDescription)
	projectKeywords := e.ProjectKeywords(project)

	matched := make([]string, 0, len(projectKeywords))
	for _, keyword := range projectKeywords {
		if strings.Contains(jobLower, keyword) {
			matched = append(matched, keyword)
		}
	}

	denominator := len(projectKeywords)
	if denominator < 1 {
		denominator = 1
	}
	keywordScore := clampScore(100 * float64(len(matched)) / float64(denominator))

	similarityScore := clampScore(100 * wordOverlap(jobLower, strings.ToLower(project.Name+" "+project.FullDescription())))

	overall := roundTo1(keywordScore*e.weights.KeywordWeight + similarityScore*e.weights.SimilarityWeight)

	return types.ScoredProject{
		ProjectName:     project.Name,
		OverallScore:    clampScore(overall),
		KeywordScore:    roundTo1(keywordScore),
		SimilarityScore: roundTo1(similarityScore),
		MatchedKeywords: matched,
		TechStack:       project.TechStack,
	}
}

// wordOverlap returns the fraction of unique alphabetic words in jobText that
// also appear in projectText.
func wordOverlap(jobText, projectText string) float64 {
	jobWords := uniqueWords(jobText)
	if len(jobWords) == 0 {
		return 0
	}
	projectWords := uniqueWords(projectText)

	common := 0
	for word := range jobWords {
		if _, found := projectWords[word]; found {
			common++
		}
	}
	return float64(common) / float64(len(jobWords))
}

func uniqueWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range wordPattern.FindAllString(text, -1) {
		words[word] = struct{}{}
	}
	return words
}

// clampScore restricts a score to the closed interval [0, 100].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// roundTo1 rounds to one decimal place.
func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}
