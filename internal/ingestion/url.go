package ingestion

import (
	"context"
	"fmt"

	"github.com/therrshan/resume-feedback/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts the main text from its HTML,
// cleans it, and returns the cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(textContent)
	return cleaned, NewMetadata(cleaned, urlStr), nil
}
