// Package ingestion reads resumes and job descriptions from files and URLs
// and normalizes their text for analysis.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var spacePattern = regexp.MustCompile(`\s+`)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Keep markdown headings, normalized to column zero
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Keep bullet lists with their indentation
	if isBulletLine(line) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse internal runs of whitespace, keep indentation
	leadingSpace := len(line) - len(trimmed)
	content := spacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// NormalizeForMatching flattens text to a single line of words and basic
// punctuation, the shape keyword matching expects.
func NormalizeForMatching(text string) string {
	if text == "" {
		return ""
	}
	text = regexp.MustCompile(`[^\w\s.,;:!?\-()]`).ReplaceAllString(text, " ")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// IngestFromText cleans raw text and returns it with metadata.
func IngestFromText(content, source string) (string, *Metadata) {
	cleaned := CleanText(content)
	return cleaned, NewMetadata(cleaned, source)
}

// IngestFromFile reads a document, extracts its text by format, cleans it,
// and returns cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := ExtractFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, err
	}

	cleanedText := CleanText(content)
	metadata := NewMetadata(cleanedText, path)
	return cleanedText, metadata, nil
}
