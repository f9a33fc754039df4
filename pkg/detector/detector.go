// Package detector runs the registered anti-pattern checks over SQL queries.
//
// # Quick Start
//
//	d := detector.New()
//	for _, f := range d.Analyze("SELECT * FROM users") {
//	    fmt.Printf("[%s] %s: %s\n", f.Severity, f.IssueType, f.Fix)
//	}
//
// Analysis is pure text matching: it never rejects a query as invalid SQL and never
// returns an error. Queries that trigger no check contribute no findings.
package detector

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/logger"
	_ "github.com/nsxbet/slowql/pkg/rules/antipattern"
	"github.com/nsxbet/slowql/pkg/sqltext"
	"github.com/nsxbet/slowql/pkg/types"
)

// Detector dispatches every enabled check against each query.
//
// The set of checks is fixed when the Detector is created. Detector is safe for
// concurrent use by multiple goroutines.
type Detector struct {
	entries []advisor.Entry
	logger  logger.Interface
}

// New creates a Detector over the default registry.
func New(opts ...Option) *Detector {
	o := &options{
		registry: advisor.DefaultRegistry,
		logger:   logger.New(),
	}
	for _, opt := range opts {
		opt(o)
	}

	var entries []advisor.Entry
	for _, entry := range o.registry.Entries() {
		if o.isDisabled(entry) {
			o.logger.Debug("check disabled", "check", entry.Type)
			continue
		}
		entries = append(entries, entry)
	}
	return &Detector{
		entries: entries,
		logger:  o.logger,
	}
}

// Checks returns the enabled checks in dispatch order.
func (d *Detector) Checks() []advisor.Entry {
	return append([]advisor.Entry(nil), d.entries...)
}

// Analyze runs every enabled check against each query.
//
// Findings are grouped by query in submission order, and each query's findings
// follow check registration order. A check that panics is skipped for that query
// with a logged warning; the remaining checks and queries are still analyzed.
func (d *Detector) Analyze(queries ...string) []*types.Finding {
	var findings []*types.Finding
	for i, query := range queries {
		findings = append(findings, d.analyzeQuery(i, query)...)
	}
	return findings
}

// AnalyzeParallel is Analyze spread over a bounded pool of workers.
//
// The result has the same order as Analyze. When ctx is cancelled, queries that
// were not yet analyzed are skipped and the findings gathered so far are returned
// together with the context error. A non-positive workers value uses GOMAXPROCS.
func (d *Detector) AnalyzeParallel(ctx context.Context, queries []string, workers int) ([]*types.Finding, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perQuery := make([][]*types.Finding, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, query := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perQuery[i] = d.analyzeQuery(i, query)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var findings []*types.Finding
	for _, list := range perQuery {
		findings = append(findings, list...)
	}
	return findings, err
}

func (d *Detector) analyzeQuery(index int, query string) []*types.Finding {
	normalized := sqltext.Normalize(query)
	if normalized == "" {
		return nil
	}

	checkCtx := advisor.Context{
		Normalized: normalized,
		Original:   query,
	}
	var findings []*types.Finding
	for _, entry := range d.entries {
		finding, err := advisor.Check(entry.Type, entry.Advisor, checkCtx)
		if err != nil {
			d.logger.Warn("check failed, skipping",
				"check", entry.Type,
				"query_index", index,
				"query", advisor.TruncateStatement(advisor.OneLine(query), 80),
				logger.Error(err),
			)
			continue
		}
		if finding != nil {
			findings = append(findings, finding)
		}
	}
	return findings
}
