package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/therrshan/resume-feedback/internal/prompts"
	"github.com/therrshan/resume-feedback/internal/types"
)

const (
	maxProjectsToImprove = 3
	maxTargetKeywords    = 10
	maxJobContextChars   = 800
)

// improvedProjects represents the expected JSON response for phrasing
// improvement.
type improvedProjects struct {
	ImprovedProjects []types.ImprovedProject `json:"improved_projects"`
}

// ImprovePhrasing asks the model to rewrite the strongest projects with the
// target keywords worked in. At most three projects and ten keywords are
// sent. Failures are reported wrapped in ErrUnavailable.
func ImprovePhrasing(ctx context.Context, client Client, projects []types.Project, keywords []string, jobContext string) ([]types.ImprovedProject, error) {
	if len(projects) == 0 {
		return nil, nil
	}
	if len(projects) > maxProjectsToImprove {
		projects = projects[:maxProjectsToImprove]
	}
	if len(keywords) > maxTargetKeywords {
		keywords = keywords[:maxTargetKeywords]
	}

	var sb strings.Builder
	for i, project := range projects {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, project.Name, strings.Join(project.TechStack, ", "))
		for _, point := range project.DescriptionPoints {
			fmt.Fprintf(&sb, "   - %s\n", point)
		}
	}

	template := prompts.MustGet("analysis.json", "improve-phrasing")
	prompt := prompts.Format(template, map[string]string{
		"Projects":   sb.String(),
		"Keywords":   strings.Join(keywords, ", "),
		"JobContext": truncate(jobContext, maxJobContextChars),
	})

	jsonResp, err := client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("%w: phrasing improvement: %v", ErrUnavailable, err)
	}

	var parsed improvedProjects
	if err := json.Unmarshal([]byte(ExtractJSONObject(CleanJSONBlock(jsonResp))), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, &ResponseError{
			Task:    "phrasing improvement",
			Message: "unparseable response",
			Cause:   err,
		})
	}

	// Drop entries the model invented for projects it was not given.
	known := make(map[string]struct{}, len(projects))
	for _, project := range projects {
		known[strings.ToLower(project.Name)] = struct{}{}
	}
	var result []types.ImprovedProject
	for _, improved := range parsed.ImprovedProjects {
		if _, found := known[strings.ToLower(improved.ProjectName)]; !found {
			continue
		}
		if len(improved.ImprovedPoints) == 0 {
			continue
		}
		result = append(result, improved)
	}
	return result, nil
}
