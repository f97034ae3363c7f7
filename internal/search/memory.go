package search

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var memoryWordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// MemorySearcher is an in-process Searcher used when no database is
// configured. Ranking is word-overlap between query and chunk, which keeps
// single-run CLI analysis working without any infrastructure.
type MemorySearcher struct {
	mu     sync.RWMutex
	chunks map[string][]Chunk
}

var _ Searcher = (*MemorySearcher)(nil)

// NewMemorySearcher returns an empty in-memory searcher.
func NewMemorySearcher() *MemorySearcher {
	return &MemorySearcher{chunks: make(map[string][]Chunk)}
}

// Store indexes chunks under the given namespace.
func (s *MemorySearcher) Store(_ context.Context, namespace string, chunks []Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, chunk := range chunks {
		if chunk.ID == "" {
			chunk.ID = uuid.NewString()
		}
		s.chunks[namespace] = append(s.chunks[namespace], chunk)
	}
	return nil
}

// Query returns up to topK chunks ranked by word overlap with the query.
// Chunks with no overlap are omitted.
func (s *MemorySearcher) Query(_ context.Context, namespace, query string, topK int) ([]Match, error) {
	if topK <= 0 {
		topK = 5
	}

	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []Match
	for _, chunk := range s.chunks[namespace] {
		overlap := 0
		for word := range wordSet(chunk.Content) {
			if queryWords[word] {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		matches = append(matches, Match{
			Chunk: chunk,
			Score: float64(overlap) / float64(len(queryWords)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Clear removes every chunk in the namespace.
func (s *MemorySearcher) Clear(_ context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chunks, namespace)
	return nil
}

func wordSet(text string) map[string]bool {
	words := memoryWordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
