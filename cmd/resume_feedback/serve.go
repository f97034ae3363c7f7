package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/therrshan/resume-feedback/internal/analyzer"
	"github.com/therrshan/resume-feedback/internal/llm"
	"github.com/therrshan/resume-feedback/internal/search"
	"github.com/therrshan/resume-feedback/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the resume feedback REST API. Endpoints: POST /analyze, POST /projects/latex, GET /health. Set --auth to require JWT bearer tokens on /analyze (JWT_SECRET must be set).",
	RunE:  runServe,
}

var (
	serveAddr   string
	serveAPIKey string
	serveDBURL  string
	serveAuth   bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for full-text retrieval (overrides DATABASE_URL)")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require JWT bearer auth on /analyze")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := serveAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	dbURL := serveDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	var client llm.Client
	if apiKey != "" {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultGeminiConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	var searcher search.Searcher
	if dbURL != "" {
		pg, err := search.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect retrieval store: %w", err)
		}
		defer pg.Close()
		searcher = pg
	} else {
		searcher = search.NewMemorySearcher()
	}

	s, err := server.New(server.Config{
		Addr:        serveAddr,
		RequireAuth: serveAuth,
	}, analyzer.New(nil, client, searcher))
	if err != nil {
		return err
	}

	return s.Start()
}
