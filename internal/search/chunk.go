package search

import "strings"

const (
	// DefaultChunkSize is the target chunk length in characters.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is how many trailing characters of one chunk
	// are repeated at the start of the next.
	DefaultChunkOverlap = 200
)

// ChunkText splits text into chunks of roughly size characters with the
// given overlap between consecutive chunks. Paragraph boundaries are
// preferred over sentence or word boundaries; a chunk is only split
// mid-paragraph when a single paragraph exceeds the chunk size. Returns
// nil for blank input.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 4
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var pieces []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) <= size {
			pieces = append(pieces, para)
			continue
		}
		pieces = append(pieces, splitWords(para, size)...)
	}

	var chunks []string
	var current strings.Builder
	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+2+len(piece) > size {
			chunk := current.String()
			chunks = append(chunks, chunk)
			current.Reset()
			// Carry the overlap only when the next piece still fits
			// beside it, so chunks stay within the size bound.
			if tail := overlapTail(chunk, overlap); tail != "" && len(tail)+2+len(piece) <= size {
				current.WriteString(tail)
			}
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(piece)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// splitWords breaks an oversized paragraph at word boundaries.
func splitWords(para string, size int) []string {
	words := strings.Fields(para)
	var out []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > size {
			out = append(out, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

// overlapTail returns the last overlap characters of chunk, trimmed
// forward to a word boundary so chunks never start mid-word.
func overlapTail(chunk string, overlap int) string {
	if overlap <= 0 || len(chunk) <= overlap {
		return ""
	}
	tail := chunk[len(chunk)-overlap:]
	if idx := strings.IndexAny(tail, " \n"); idx >= 0 {
		tail = tail[idx+1:]
	}
	return strings.TrimSpace(tail)
}
