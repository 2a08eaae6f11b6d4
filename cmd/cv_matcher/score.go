package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-matcher/internal/cache"
	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/logger"
	"github.com/jonathan/cv-matcher/internal/observability"
	"github.com/jonathan/cv-matcher/internal/scoring"
	"github.com/jonathan/cv-matcher/internal/taxonomy"
	"github.com/jonathan/cv-matcher/internal/types"
	"github.com/jonathan/cv-matcher/internal/validation"
	"github.com/jonathan/cv-matcher/schemas"
)

// batchConcurrency bounds parallel candidate scoring in --cv-dir mode.
const batchConcurrency = 4

var (
	scoreJobPath  string
	scoreCVPath   string
	scoreCVDir    string
	scoreConfig   string
	scorePretty   bool
	scoreVerbose  bool
	scoreDebug    bool
	scoreJSONLogs bool
	scoreNoCache  bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one or many candidates against a job",
	Long:  "Reads a job-requirements JSON file and either one candidate-analysis JSON file (--cv) or a directory of them (--cv-dir), and emits match reports with validation verdicts as JSON on stdout.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job requirements JSON (required)")
	scoreCmd.Flags().StringVar(&scoreCVPath, "cv", "", "Path to candidate analysis JSON")
	scoreCmd.Flags().StringVar(&scoreCVDir, "cv-dir", "", "Directory of candidate analysis JSON files")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to config JSON file")
	scoreCmd.Flags().BoolVar(&scorePretty, "pretty", false, "Indent JSON output")
	scoreCmd.Flags().BoolVar(&scoreVerbose, "verbose", false, "Print formatted score summaries to stderr")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug logging")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit JSON-encoded logs")
	scoreCmd.Flags().BoolVar(&scoreNoCache, "no-cache", false, "Disable the result cache")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

// matchReport is the output envelope for one scored candidate.
type matchReport struct {
	ReportID        string                  `json:"report_id"`
	CVFile          string                  `json:"cv_file,omitempty"`
	FromCache       bool                    `json:"from_cache"`
	Score           *types.MatchingScore    `json:"score"`
	JobValidation   *types.ValidationResult `json:"job_validation"`
	CVValidation    *types.ValidationResult `json:"cv_validation"`
	ScoreValidation *types.ValidationResult `json:"score_validation"`
}

// scorer bundles the process-wide components one score run needs.
type scorer struct {
	engine    *scoring.Engine
	validator *validation.Validator
	cache     *cache.ScoreCache
	log       *zap.Logger
}

func runScore(cmd *cobra.Command, _ []string) error {
	if (scoreCVPath == "") == (scoreCVDir == "") {
		return fmt.Errorf("exactly one of --cv and --cv-dir is required")
	}

	cfg := &config.Config{}
	if scoreConfig != "" {
		loaded, err := config.Load(scoreConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	scoreVerbose = scoreVerbose || cfg.Verbose

	log, err := logger.New(scoreJSONLogs || cfg.JSONLogs, scoreDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	engine, err := scoring.NewEngine(taxonomy.New(), cfg.Profiles)
	if err != nil {
		return err
	}

	s := &scorer{
		engine:    engine,
		validator: validation.New(),
		log:       log,
	}

	if !scoreNoCache {
		entries := cfg.CacheEntries
		if entries == 0 {
			entries = cache.DefaultMaxEntries
		}
		ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
		s.cache, err = cache.New(entries, ttl)
		if err != nil {
			return err
		}
	}

	job, err := loadJobRequirements(scoreJobPath)
	if err != nil {
		return err
	}

	if scoreCVPath != "" {
		cv, err := loadCVAnalysis(scoreCVPath)
		if err != nil {
			return err
		}
		report, err := s.scoreOne(cv, job, scoreCVPath)
		if err != nil {
			return err
		}
		maybePrintReport(cmd, report)
		return writeJSON(cmd, report)
	}

	reports, err := s.scoreDir(job, scoreCVDir)
	if err != nil {
		return err
	}
	for _, report := range reports {
		maybePrintReport(cmd, report)
	}
	return writeJSON(cmd, reports)
}

// scoreOne scores one candidate, consulting the result cache keyed by the
// content hash of both inputs.
func (s *scorer) scoreOne(cv *types.CVAnalysis, job *types.JobRequirements, cvFile string) (*matchReport, error) {
	report := &matchReport{
		ReportID: uuid.NewString(),
		CVFile:   cvFile,
	}

	var key string
	if s.cache != nil {
		var err error
		key, err = cache.Key(cv, job)
		if err != nil {
			return nil, err
		}
		if cached, ok := s.cache.Get(key); ok {
			report.FromCache = true
			report.Score = cached
		}
	}

	if report.Score == nil {
		report.Score = s.engine.Score(cv, job)
		if s.cache != nil {
			s.cache.Set(key, report.Score)
		}
	}

	report.JobValidation = s.validator.ValidateJobRequirements(job)
	report.CVValidation = s.validator.ValidateCVAnalysis(cv)
	report.ScoreValidation = s.validator.ValidateMatchingScore(report.Score, cv, job)

	s.log.Debug("scored candidate",
		zap.String("cv_file", cvFile),
		zap.Int("overall", report.Score.OverallMatchScore),
		zap.Bool("from_cache", report.FromCache),
	)

	return report, nil
}

// scoreDir scores every *.json candidate file in dir concurrently. Reports
// come back in filename order regardless of completion order.
func (s *scorer) scoreDir(job *types.JobRequirements, dir string) ([]*matchReport, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no candidate JSON files found in %s", dir)
	}
	sort.Strings(paths)

	reports := make([]*matchReport, len(paths))
	var group errgroup.Group
	group.SetLimit(batchConcurrency)

	for i, path := range paths {
		group.Go(func() error {
			cv, err := loadCVAnalysis(path)
			if err != nil {
				return err
			}
			report, err := s.scoreOne(cv, job, path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("batch scoring complete",
		zap.Int("candidates", len(reports)),
		zap.String("job", scoreJobPath),
	)

	return reports, nil
}

// loadJobRequirements reads, schema-validates, and decodes a job file.
func loadJobRequirements(path string) (*types.JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.Validate(schemas.JobRequirements, data); err != nil {
		return nil, err
	}

	var job types.JobRequirements
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job requirements in %s: %w", path, err)
	}
	return &job, nil
}

// loadCVAnalysis reads, schema-validates, and decodes a candidate file.
func loadCVAnalysis(path string) (*types.CVAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cv file: %w", err)
	}
	if err := schemas.Validate(schemas.CVAnalysis, data); err != nil {
		return nil, err
	}

	var cv types.CVAnalysis
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("failed to parse cv file %s: %w", path, err)
	}
	if err := cv.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cv analysis in %s: %w", path, err)
	}
	return &cv, nil
}

func maybePrintReport(cmd *cobra.Command, report *matchReport) {
	if !scoreVerbose {
		return
	}
	printer := observability.NewPrinter(cmd.ErrOrStderr())
	printer.PrintMatchingScore(report.Score)
	printer.PrintValidationResult("job requirements", report.JobValidation)
	printer.PrintValidationResult("cv analysis", report.CVValidation)
	printer.PrintValidationResult("matching score", report.ScoreValidation)
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	if scorePretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
