package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/therrshan/resume-feedback/internal/types"
)

// categorizedGaps represents the expected JSON response for keyword
// categorization.
type categorizedGaps struct {
	MissingKeywords []struct {
		Keyword    string `json:"keyword"`
		Category   string `json:"category"`
		Importance string `json:"importance"`
	} `json:"missing_keywords"`
}

// CategorizeKeywords refines the category and importance of keyword gaps
// found deterministically. Keywords the model does not mention keep their
// incoming values, so the result always covers the full input. Failures are
// reported wrapped in ErrUnavailable; callers should fall back to the input
// unchanged.
func CategorizeKeywords(ctx context.Context, client Client, gaps []types.MissingKeyword, jobDescription string) ([]types.MissingKeyword, error) {
	if len(gaps) == 0 {
		return nil, nil
	}

	keywordList := make([]string, len(gaps))
	for i, gap := range gaps {
		keywordList[i] = gap.Keyword
	}

	input := fmt.Sprintf("JOB DESCRIPTION:\n%s\n\nMISSING KEYWORDS:\n%s",
		truncate(jobDescription, maxJobChars), strings.Join(keywordList, ", "))
	prompt := BuildExtractionPrompt(KeywordGapSchema(), input)

	jsonResp, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("%w: keyword categorization: %v", ErrUnavailable, err)
	}

	var parsed categorizedGaps
	if err := json.Unmarshal([]byte(ExtractJSONObject(CleanJSONBlock(jsonResp))), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, &ResponseError{
			Task:    "keyword categorization",
			Message: "unparseable response",
			Cause:   err,
		})
	}

	byKeyword := make(map[string]types.MissingKeyword, len(parsed.MissingKeywords))
	for _, entry := range parsed.MissingKeywords {
		byKeyword[strings.ToLower(entry.Keyword)] = types.MissingKeyword{
			Keyword:    entry.Keyword,
			Category:   entry.Category,
			Importance: normalizeImportance(entry.Importance),
		}
	}

	result := make([]types.MissingKeyword, len(gaps))
	for i, gap := range gaps {
		if refined, found := byKeyword[strings.ToLower(gap.Keyword)]; found {
			refined.Keyword = gap.Keyword
			if refined.Category == "" {
				refined.Category = gap.Category
			}
			if refined.Importance == "" {
				refined.Importance = gap.Importance
			}
			result[i] = refined
		} else {
			result[i] = gap
		}
	}
	return result, nil
}

func normalizeImportance(importance string) string {
	switch strings.ToLower(strings.TrimSpace(importance)) {
	case "high":
		return types.ImportanceHigh
	case "medium", "low":
		// The gap contract only knows high and medium; models sometimes
		// answer "low" anyway.
		return types.ImportanceMedium
	default:
		return ""
	}
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
