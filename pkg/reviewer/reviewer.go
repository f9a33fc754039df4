// Package reviewer provides a high-level API for finding SQL anti-patterns.
//
// This package wraps statement splitting, the detector and configuration handling
// behind a single call, making it easy to add query checks to Go applications.
//
// # Quick Start
//
//	r := reviewer.New()
//
//	result, err := r.Review(context.Background(), "SELECT * FROM users; DELETE FROM orders;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Found %d issues\n", result.Summary.Total)
//	for _, f := range result.Findings {
//	    fmt.Printf("[%s] %s: %s\n", f.Severity, f.IssueType, f.Fix)
//	}
//
// # Using Custom Configuration
//
//	r := reviewer.New()
//	if err := r.WithConfig(".slowql.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := r.Review(ctx, sqlStatements)
package reviewer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/nsxbet/slowql/pkg/config"
	"github.com/nsxbet/slowql/pkg/detector"
	"github.com/nsxbet/slowql/pkg/logger"
	"github.com/nsxbet/slowql/pkg/mysqlparser"
	"github.com/nsxbet/slowql/pkg/pgparser"
	"github.com/nsxbet/slowql/pkg/sqltext"
	"github.com/nsxbet/slowql/pkg/types"
)

// Reviewer provides a high-level API for SQL anti-pattern analysis.
// It encapsulates configuration and keeps cumulative statistics across reviews.
//
// Reviewer is safe for concurrent use by multiple goroutines.
type Reviewer struct {
	mu     sync.Mutex
	config *config.Config
	stats  map[string]int
}

// New creates a new Reviewer with the default configuration: every check enabled,
// sequential analysis and automatic statement splitting.
//
// Use WithConfig or WithConfigObject to customize it.
func New() *Reviewer {
	return &Reviewer{
		config: config.Default(),
		stats:  make(map[string]int),
	}
}

// WithConfig loads configuration from a YAML or JSON file.
// This replaces the current configuration.
//
// Returns an error if the file cannot be read, parsed or validated.
func (r *Reviewer) WithConfig(filename string) error {
	cfg, err := config.LoadFromFile(filename)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.config = cfg
	r.mu.Unlock()
	return nil
}

// WithConfigObject sets a custom configuration object directly.
// A nil cfg restores the default configuration.
//
// Returns the Reviewer for method chaining.
func (r *Reviewer) WithConfigObject(cfg *config.Config) *Reviewer {
	if cfg == nil {
		cfg = config.Default()
	}
	r.mu.Lock()
	r.config = cfg
	r.mu.Unlock()
	return r
}

// Config returns the configuration in use.
func (r *Reviewer) Config() *config.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// Review splits sql into statements and analyzes each of them.
//
// The context parameter supports cancellation and timeouts. Statements not yet
// analyzed when the context is cancelled are skipped, and the partial result is
// returned together with the context error.
//
// Optional ReviewOption parameters can customize the review behavior:
//
//	result, err := r.Review(ctx, sql,
//	    WithDisabled("SELECT * Usage"),
//	    WithMinSeverity(types.SeverityHigh),
//	)
func (r *Reviewer) Review(ctx context.Context, sql string, opts ...ReviewOption) (*ReviewResult, error) {
	result, err := r.review(ctx, sql, opts)
	if result != nil {
		r.record(result.Findings)
	}
	return result, err
}

// ReviewStatements analyzes already split statements.
func (r *Reviewer) ReviewStatements(ctx context.Context, statements []string, opts ...ReviewOption) (*ReviewResult, error) {
	result, err := r.analyze(ctx, statements, opts)
	r.record(result.Findings)
	return result, err
}

func (r *Reviewer) review(ctx context.Context, sql string, opts []ReviewOption) (*ReviewResult, error) {
	statements, err := Split(sql, r.Config().SplitMode())
	if err != nil {
		return nil, err
	}
	return r.analyze(ctx, statements, opts)
}

func (r *Reviewer) analyze(ctx context.Context, statements []string, opts []ReviewOption) (*ReviewResult, error) {
	cfg := r.Config()
	reviewOpts := &reviewOptions{
		minSeverity: cfg.MinSeverityLevel(),
	}
	for _, opt := range opts {
		opt(reviewOpts)
	}

	log := reviewOpts.logger
	if reviewOpts.queryLogging {
		log = logger.NewWithLevel(slog.LevelDebug)
	}
	if log == nil {
		log = logger.New()
	}

	detectorOpts := []detector.Option{
		detector.WithDisabled(cfg.Disabled...),
		detector.WithDisabled(reviewOpts.disabled...),
		detector.WithLogger(log),
	}
	if reviewOpts.registry != nil {
		detectorOpts = append(detectorOpts, detector.WithRegistry(reviewOpts.registry))
	}
	d := detector.New(detectorOpts...)

	workers := 1
	if cfg.Parallel {
		workers = cfg.Workers
	}
	for i, stmt := range statements {
		log.Debug("analyzing statement", "index", i, "statement", stmt)
	}
	findings, err := d.AnalyzeParallel(ctx, statements, workers)
	findings = filterMinSeverity(findings, reviewOpts.minSeverity)

	result := &ReviewResult{
		Findings:   findings,
		Statements: len(statements),
		Summary:    calculateSummary(findings),
	}
	return result, err
}

// Split breaks a SQL payload into statements using mode.
//
// SplitAuto tries the MySQL lexer first, which understands comments, DELIMITER
// and compound blocks, and falls back to the quote-aware splitter when lexing fails.
func Split(sql string, mode config.SplitMode) ([]string, error) {
	switch mode {
	case config.SplitSimple:
		return sqltext.SplitStatements(sql), nil
	case config.SplitMySQL:
		statements, err := mysqlparser.Statements(sql)
		if err != nil {
			return nil, errors.Wrap(err, "failed to split statements")
		}
		return statements, nil
	case config.SplitPostgres:
		statements, err := pgparser.Statements(sql)
		if err != nil {
			return nil, errors.Wrap(err, "failed to split statements")
		}
		return statements, nil
	case config.SplitAuto, "":
		statements, err := mysqlparser.Statements(sql)
		if err != nil {
			slog.Debug("MySQL splitter failed, falling back to simple split", "error", err)
			return sqltext.SplitStatements(sql), nil
		}
		return statements, nil
	}
	return nil, errors.Errorf("unknown split mode %q", mode)
}

func filterMinSeverity(findings []*types.Finding, threshold types.Severity) []*types.Finding {
	if threshold == types.SeverityUnspecified {
		return findings
	}
	filtered := findings[:0:0]
	for _, f := range findings {
		if f.Severity.AtLeast(threshold) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// calculateSummary computes aggregate statistics from findings
func calculateSummary(findings []*types.Finding) Summary {
	summary := Summary{}
	seen := make(map[string]bool)
	for _, f := range findings {
		summary.Total++
		switch f.Severity {
		case types.SeverityCritical:
			summary.Critical++
		case types.SeverityHigh:
			summary.High++
		case types.SeverityMedium:
			summary.Medium++
		case types.SeverityLow:
			summary.Low++
		}
		if !seen[f.IssueType] {
			seen[f.IssueType] = true
			summary.IssueTypes++
		}
	}
	return summary
}
