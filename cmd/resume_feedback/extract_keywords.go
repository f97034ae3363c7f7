package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/therrshan/resume-feedback/internal/ingestion"
	"github.com/therrshan/resume-feedback/internal/keywords"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract salient keywords from a job description or resume",
	RunE:  runExtractKeywords,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractMax        int
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to text file (required)")
	extractKeywordsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractKeywordsCmd.Flags().IntVar(&extractMax, "max", 0, "Maximum keywords to return (0 = default)")
	_ = extractKeywordsCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(_ *cobra.Command, _ []string) error {
	text, _, err := ingestion.IngestFromFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest input: %w", err)
	}

	extracted := keywords.DefaultVocabulary().Extract(text, extractMax)
	return writeJSON(extractOutputFile, map[string]any{
		"keywords": extracted,
		"count":    len(extracted),
	})
}
