package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/therrshan/resume-feedback/internal/analyzer"
	"github.com/therrshan/resume-feedback/internal/config"
	"github.com/therrshan/resume-feedback/internal/ingestion"
	"github.com/therrshan/resume-feedback/internal/llm"
	"github.com/therrshan/resume-feedback/internal/observability"
	"github.com/therrshan/resume-feedback/internal/search"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis of a resume and projects against a job description",
	Long:  "Run the full feedback pipeline: rank LaTeX projects against a job description, find keyword gaps, and (with an API key) collect LLM resume feedback and improved phrasing. Writes an AnalysisResult JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeProjects   string
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeDBURL      string
	analyzeNamespace  string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file (pdf, docx, txt, tex, md)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeProjects, "projects", "", "Path to LaTeX projects file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL URL for full-text retrieval (overrides DATABASE_URL)")
	analyzeCmd.Flags().StringVar(&analyzeNamespace, "namespace", "", "Retrieval namespace (enables the retrieval supplement)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:      analyzeResume,
		Job:         analyzeJob,
		JobURL:      analyzeJobURL,
		Projects:    analyzeProjects,
		APIKey:      analyzeAPIKey,
		DatabaseURL: analyzeDBURL,
		Namespace:   analyzeNamespace,
		Verbose:     analyzeVerbose,
	}
	if analyzeConfigFile != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	ctx := context.Background()

	// Job description
	var jobText string
	var err error
	if cfg.JobURL != "" {
		jobText, _, err = ingestion.IngestFromURL(ctx, cfg.JobURL)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting from URL: %w", err)
		}
	} else {
		jobText, _, err = ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
	}

	// Resume (optional)
	var resumeText string
	if cfg.Resume != "" {
		resumeText, _, err = ingestion.IngestFromFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
	}

	// Projects (optional)
	var projectsLaTeX string
	if cfg.Projects != "" {
		content, err := os.ReadFile(cfg.Projects)
		if err != nil {
			return fmt.Errorf("failed to read projects file: %w", err)
		}
		projectsLaTeX = string(content)
	}

	// LLM client (optional)
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	} else if cfg.Verbose {
		fmt.Println("[VERBOSE] No API key configured, running deterministic analysis only")
	}

	// Retrieval (optional)
	var searcher search.Searcher
	if cfg.Namespace != "" {
		if cfg.DatabaseURL != "" {
			pg, err := search.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect retrieval store: %w", err)
			}
			defer pg.Close()
			searcher = pg
		} else {
			searcher = search.NewMemorySearcher()
		}
	}

	a := analyzer.New(nil, client, searcher)
	result, err := a.Analyze(ctx, analyzer.Options{
		ResumeText:     resumeText,
		JobDescription: jobText,
		ProjectsLaTeX:  projectsLaTeX,
		Namespace:      cfg.Namespace,
		Verbose:        cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintAnalysisResult(result)
	}

	return writeJSON(analyzeOutputFile, result)
}

// writeJSON marshals v with indentation and writes it to path, or stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
