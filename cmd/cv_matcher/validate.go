package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/validation"
)

var (
	validateJobPath string
	validateCVPath  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit a job or candidate file without scoring",
	Long:  "Runs schema and plausibility checks on a job-requirements or candidate-analysis JSON file and prints the validation result as JSON.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateJobPath, "job", "", "Path to job requirements JSON")
	validateCmd.Flags().StringVar(&validateCVPath, "cv", "", "Path to candidate analysis JSON")
	validateCmd.MarkFlagsMutuallyExclusive("job", "cv")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateJobPath == "" && validateCVPath == "" {
		return fmt.Errorf("one of --job and --cv is required")
	}

	validator := validation.New()

	if validateJobPath != "" {
		job, err := loadJobRequirements(validateJobPath)
		if err != nil {
			return err
		}
		return writeJSON(cmd, validator.ValidateJobRequirements(job))
	}

	cv, err := loadCVAnalysis(validateCVPath)
	if err != nil {
		return err
	}
	return writeJSON(cmd, validator.ValidateCVAnalysis(cv))
}
