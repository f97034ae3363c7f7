// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/therrshan/resume-feedback/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysisResult outputs the full analysis as a sequence of boxes.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.printSummary(result)
	p.PrintResumeAnalysis(result.ResumeAnalysis)
	p.PrintRecommendations(result.ProjectRecommendations)
	p.PrintMissingKeywords(result.MissingKeywords)
	p.PrintImprovedProjects(result.ImprovedProjects)
}

func (p *Printer) printSummary(result *types.AnalysisResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score:    %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Recommendations:  %d\n", len(result.ProjectRecommendations)))
	sb.WriteString(fmt.Sprintf("Missing Keywords: %d\n", len(result.MissingKeywords)))
	sb.WriteString(fmt.Sprintf("Processing Time:  %.2fs", result.ProcessingTime))
	p.printBox("ANALYSIS SUMMARY", sb.String())
}

// PrintResumeAnalysis outputs the resume critic's dimension scores.
func (p *Printer) PrintResumeAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:        %d/100\n\n", analysis.OverallScore))

	dimensions := []struct {
		name  string
		score types.DimensionScore
	}{
		{"Clarity", analysis.Clarity},
		{"Role Alignment", analysis.RoleAlignment},
		{"Tone", analysis.Tone},
	}
	for i, dim := range dimensions {
		sb.WriteString(fmt.Sprintf("%-15s %d/100\n", dim.name+":", dim.score.Score))
		feedback := dim.score.Feedback
		if len(feedback) > 50 {
			feedback = feedback[:47] + "..."
		}
		if feedback != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", feedback))
		}
		for _, suggestion := range dim.score.Suggestions {
			if len(suggestion) > 48 {
				suggestion = suggestion[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if i < len(dimensions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the projects worth featuring, best first.
func (p *Printer) PrintRecommendations(recs []types.ProjectRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.ProjectName))
		sb.WriteString(fmt.Sprintf("    Relevance: %.1f%%\n", rec.RelevanceScore))
		if len(rec.KeySkills) > 0 {
			skills := strings.Join(rec.KeySkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more projects", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissingKeywords outputs keyword gaps grouped by importance markers.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingKeywords(gaps []types.MissingKeyword) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO KEYWORD GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d keyword gaps:\n\n", len(gaps)))

	for _, gap := range gaps {
		marker := "•"
		if gap.Importance == types.ImportanceHigh {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, gap.Keyword))
		if gap.Category != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", gap.Category))
		}
		sb.WriteString("\n")
	}

	p.printBox("MISSING KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImprovedProjects outputs the rewritten project descriptions.
func (p *Printer) PrintImprovedProjects(improved []types.ImprovedProject) {
	if len(improved) == 0 {
		return
	}

	var sb strings.Builder
	for i, project := range improved {
		sb.WriteString(fmt.Sprintf("%s\n", project.ProjectName))
		for _, point := range project.ImprovedPoints {
			if len(point) > 50 {
				point = point[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", point))
		}
		if len(project.KeywordsAdded) > 0 {
			added := strings.Join(project.KeywordsAdded, ", ")
			if len(added) > 40 {
				added = added[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [+%s]\n", added))
		}
		if i < len(improved)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPROVED PHRASING", strings.TrimSuffix(sb.String(), "\n"))
}
