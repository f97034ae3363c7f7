// Package search provides full-text retrieval over chunked resume and
// project content. It backs the "similar project" suggestions in analysis
// output; the deterministic ranker never consults it.
package search

import "context"

// Chunk is one indexed slice of a document.
type Chunk struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Match is a chunk returned by a query, with its relevance rank.
type Match struct {
	Chunk
	Score float64 `json:"score"`
}

// Searcher indexes document chunks and answers ranked text queries.
// Namespaces keep different resumes (or sessions) isolated from each other.
type Searcher interface {
	// Store indexes chunks under the given namespace.
	Store(ctx context.Context, namespace string, chunks []Chunk) error

	// Query returns up to topK chunks from the namespace ranked by
	// relevance to the query text, best first.
	Query(ctx context.Context, namespace, query string, topK int) ([]Match, error)

	// Clear removes every chunk in the namespace.
	Clear(ctx context.Context, namespace string) error
}
