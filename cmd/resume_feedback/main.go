// Package main provides the entry point for the resume feedback CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_feedback",
	Short: "Resume feedback and project ranking engine",
	Long:  "Resume Feedback ranks portfolio projects against job descriptions, finds keyword gaps, and layers optional LLM feedback on top of a deterministic scoring core.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
