// Package keywords implements deterministic keyword extraction from free text.
// Extraction blends a curated technical-term matcher with a frequency ranking
// over normalized tokens; it performs no I/O and is safe for concurrent use.
package keywords

import "regexp"

// generalStopwords is a fixed English stopword list.
var generalStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "did", "do", "does", "doing", "down", "during",
	"each", "few", "for", "from", "further", "had", "has", "have", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "it", "its", "itself", "just", "me",
	"more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off",
	"on", "once", "only", "or", "other", "our", "ours", "ourselves", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would", "you",
	"your", "yours", "yourself", "yourselves",
}

// domainStopwords are terms near-universal in job and resume text that carry
// no discriminating signal.
var domainStopwords = []string{
	"ability", "company", "development", "duties", "excellent", "experience",
	"good", "include", "including", "job", "knowledge", "minimum", "plus",
	"position", "prefer", "preferred", "project", "projects", "required",
	"requirements", "responsibilities", "responsible", "role", "skill",
	"skills", "strong", "team", "understanding", "use", "used", "using",
	"work", "working", "year", "years",
}

// techPatternSources define the curated technical-term matcher. Patterns are
// scanned case-insensitively over the raw lowercased text, before any
// lemmatization, so framework names survive intact.
var techPatternSources = []string{
	`\b(?:python|java|javascript|typescript|c\+\+|c#|go|golang|rust|swift|kotlin|scala|ruby|php)\b`,
	`\b(?:react|angular|vue|django|flask|spring|express|fastapi|streamlit|nextjs)\b`,
	`\b(?:aws|azure|gcp|docker|kubernetes|jenkins|git|github|gitlab|terraform)\b`,
	`\b(?:mysql|postgresql|mongodb|redis|elasticsearch|pinecone|snowflake)\b`,
	`\b(?:tensorflow|pytorch|scikit-learn|pandas|numpy|langchain|ollama|openai)\b`,
	`\b(?:html|css|sass|bootstrap|tailwind|material-ui)\b`,
	`\b(?:node\.?js|npm|yarn|webpack|babel|vite)\b`,
	`\b(?:linux|ubuntu|macos|windows|bash|shell)\b`,
	`\b(?:api|rest|graphql|microservices|serverless|rag|llm|ai|ml|nlp|devops|ci/cd)\b`,
}

// Vocabulary holds the fixed stopword and technical-term tables used by the
// extractor. It is constructed once at startup and never mutated afterward,
// which keeps every extraction call free of shared mutable state.
type Vocabulary struct {
	stopwords    map[string]struct{}
	techPatterns []*regexp.Regexp
}

// DefaultVocabulary builds the standard vocabulary from the fixed tables.
func DefaultVocabulary() *Vocabulary {
	stopwords := make(map[string]struct{}, len(generalStopwords)+len(domainStopwords))
	for _, word := range generalStopwords {
		stopwords[word] = struct{}{}
	}
	for _, word := range domainStopwords {
		stopwords[word] = struct{}{}
	}

	patterns := make([]*regexp.Regexp, 0, len(techPatternSources))
	for _, src := range techPatternSources {
		patterns = append(patterns, regexp.MustCompile(src))
	}

	return &Vocabulary{
		stopwords:    stopwords,
		techPatterns: patterns,
	}
}

// IsStopword reports whether token is in the fixed stopword set.
func (v *Vocabulary) IsStopword(token string) bool {
	_, found := v.stopwords[token]
	return found
}
