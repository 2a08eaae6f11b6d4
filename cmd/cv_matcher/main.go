// Package main provides the entry point for the cv-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_matcher",
	Short: "CV/Job compatibility scoring",
	Long:  "cv_matcher scores structured candidate analyses against structured job requirements, producing weighted, explainable match scores with cross-validation verdicts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
