package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/therrshan/resume-feedback/internal/ingestion"
	"github.com/therrshan/resume-feedback/internal/latex"
	"github.com/therrshan/resume-feedback/internal/scoring"
)

var rankProjectsCmd = &cobra.Command{
	Use:   "rank-projects",
	Short: "Rank LaTeX projects against a job description",
	Long:  "Score every project in a LaTeX projects file against a job description and print them ranked by relevance. Purely deterministic; no API key needed.",
	RunE:  runRankProjects,
}

var (
	rankProjectsFile string
	rankJobFile      string
	rankOutputFile   string
	rankTop          int
)

func init() {
	rankProjectsCmd.Flags().StringVar(&rankProjectsFile, "projects", "", "Path to LaTeX projects file (required)")
	rankProjectsCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to job description text file (required)")
	rankProjectsCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankProjectsCmd.Flags().IntVar(&rankTop, "top", -1, "Keep only the top N projects (negative = all)")
	_ = rankProjectsCmd.MarkFlagRequired("projects")
	_ = rankProjectsCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(rankProjectsCmd)
}

func runRankProjects(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(rankProjectsFile)
	if err != nil {
		return fmt.Errorf("failed to read projects file: %w", err)
	}
	projects, err := latex.ParseProjects(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse projects: %w", err)
	}

	jobText, _, err := ingestion.IngestFromFile(rankJobFile)
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	ranked := scoring.NewDefaultEngine().RankProjects(projects, jobText, rankTop)
	return writeJSON(rankOutputFile, ranked)
}
