package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/therrshan/resume-feedback/internal/latex"
)

var parseProjectsCmd = &cobra.Command{
	Use:   "parse-projects",
	Short: "Parse LaTeX project entries into structured JSON",
	Long:  "Parse \\resumeProjectHeading entries from a LaTeX file into structured project JSON: name, tech stack, date range, link, and description points.",
	RunE:  runParseProjects,
}

var (
	parseProjectsInput  string
	parseProjectsOutput string
)

func init() {
	parseProjectsCmd.Flags().StringVarP(&parseProjectsInput, "in", "i", "", "Path to LaTeX projects file (required)")
	parseProjectsCmd.Flags().StringVarP(&parseProjectsOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseProjectsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseProjectsCmd)
}

func runParseProjects(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseProjectsInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	projects, err := latex.ParseProjects(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse projects: %w", err)
	}

	return writeJSON(parseProjectsOutput, projects)
}
