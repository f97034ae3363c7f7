package keywords

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultMaxKeywords caps extraction output when the caller passes no limit.
	DefaultMaxKeywords = 25
	// minTokensForRanking is the minimum qualifying token count below which
	// frequency ranking is skipped (it is degenerate on tiny inputs).
	minTokensForRanking = 5
	// minTokenLength excludes short alphabetic runs ("a", "of", "db") that
	// are almost never salient on their own.
	minTokenLength = 3
)

var (
	wordRunPattern    = regexp.MustCompile(`[a-z]+`)
	nonLetterPattern  = regexp.MustCompile(`[^a-z]+`)
	rankedTermPattern = regexp.MustCompile(`^[a-z]+(?: [a-z]+)?$`)
)

// Extract returns an ordered list of salient terms from text, at most
// maxKeywords long. Technical terms come first in discovery order, followed by
// frequency-ranked normalized tokens and bigrams. Identical input always
// produces identical output; malformed input never produces an error.
func (v *Vocabulary) Extract(text string, maxKeywords int) (result []string) {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	// Any internal failure degrades to the simple frequency extractor
	// rather than surfacing an error to the caller.
	defer func() {
		if r := recover(); r != nil {
			result = v.ExtractSimple(text, maxKeywords)
		}
	}()

	lowered := strings.ToLower(text)

	// Tokenize into alphabetic runs, drop short tokens and stopwords.
	tokens := wordRunPattern.FindAllString(lowered, -1)
	filtered := make([]string, 0, len(tokens))
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) < minTokenLength || v.IsStopword(token) {
			continue
		}
		filtered = append(filtered, token)
		lemmas = append(lemmas, Lemmatize(token))
	}

	// Frequency ranking is undefined below a handful of tokens; return
	// the qualifying token list as-is.
	if len(filtered) < minTokensForRanking {
		return filtered
	}

	techTerms := v.ExtractTechnical(lowered)
	ranked := rankBySalience(lemmas, maxKeywords*2)

	seen := make(map[string]struct{}, maxKeywords)
	result = make([]string, 0, maxKeywords)
	for _, term := range techTerms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		result = append(result, term)
		if len(result) >= maxKeywords {
			return result
		}
	}
	for _, term := range ranked {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		result = append(result, term)
		if len(result) >= maxKeywords {
			break
		}
	}

	return result
}

// ExtractTechnical scans text with the curated technical-term patterns and
// returns matches in first-seen order, deduplicated by exact string. The scan
// runs over the raw lowercased text, not lemmatized tokens, so multi-character
// names like "node.js" and "ci/cd" survive.
func (v *Vocabulary) ExtractTechnical(text string) []string {
	lowered := strings.ToLower(text)

	type occurrence struct {
		term  string
		index int
	}

	seen := make(map[string]struct{})
	occurrences := make([]occurrence, 0)
	for _, pattern := range v.techPatterns {
		for _, loc := range pattern.FindAllStringIndex(lowered, -1) {
			term := lowered[loc[0]:loc[1]]
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			occurrences = append(occurrences, occurrence{term: term, index: loc[0]})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].index < occurrences[j].index
	})

	terms := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		terms = append(terms, occ.term)
	}
	return terms
}

// ExtractSimple is the fallback extractor: whitespace splitting plus frequency
// counting, no lemmatization. It is lower quality than Extract but cannot fail.
func (v *Vocabulary) ExtractSimple(text string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	cleaned := nonLetterPattern.ReplaceAllString(strings.ToLower(text), " ")
	counts := make(map[string]int)
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minTokenLength {
			continue
		}
		counts[word]++
	}

	return topTerms(counts, maxKeywords)
}

// rankBySalience ranks lemmatized tokens and their adjacent bigrams by term
// frequency with length normalization. On a single document this degenerates
// to a frequency weighting, which is exactly the intent: it orders
// non-technical terms by how often the author repeats them.
func rankBySalience(tokens []string, limit int) []string {
	counts := make(map[string]int, len(tokens))
	for i, token := range tokens {
		counts[token]++
		if i+1 < len(tokens) {
			counts[token+" "+tokens[i+1]]++
		}
	}

	// Bigrams that occur only once add noise, not salience.
	for term, count := range counts {
		if count < 2 && strings.Contains(term, " ") {
			delete(counts, term)
		}
	}

	return topTerms(counts, limit)
}

// topTerms returns the highest-count terms, ties broken lexicographically so
// the ordering is fully deterministic.
func topTerms(counts map[string]int, limit int) []string {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		if rankedTermPattern.MatchString(term) {
			terms = append(terms, term)
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
