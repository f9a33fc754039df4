package reviewer

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/config"
	"github.com/nsxbet/slowql/pkg/logger"
	"github.com/nsxbet/slowql/pkg/types"
)

func quiet() ReviewOption {
	return WithLogger(logger.Discard())
}

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Config() == nil {
		t.Fatal("Expected default config, got nil")
	}
	if r.Config().SplitMode() != config.SplitAuto {
		t.Errorf("Expected split mode auto, got %q", r.Config().SplitMode())
	}
}

func TestReview_SelectStar(t *testing.T) {
	result, err := New().Review(context.Background(), "SELECT * FROM users", quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if result.Statements != 1 {
		t.Errorf("Expected 1 statement, got %d", result.Statements)
	}
	if len(result.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(result.Findings))
	}
	if result.Findings[0].IssueType != "SELECT * Usage" {
		t.Errorf("Expected SELECT * Usage, got %q", result.Findings[0].IssueType)
	}
	if result.Summary.Medium != 1 || result.Summary.IssueTypes != 1 {
		t.Errorf("Unexpected summary: %+v", result.Summary)
	}
}

func TestReview_MultipleStatements(t *testing.T) {
	sql := `
	SELECT * FROM users;
	DELETE FROM sessions;
	SELECT id FROM users WHERE id = 1;
	`

	result, err := New().Review(context.Background(), sql, quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if result.Statements != 3 {
		t.Errorf("Expected 3 statements, got %d", result.Statements)
	}
	if len(result.FilterByIssueType("SELECT * Usage")) != 1 {
		t.Error("Expected one SELECT * finding")
	}
	deletes := result.FilterByIssueType("missing where in update/delete")
	if len(deletes) != 1 {
		t.Fatalf("Expected one missing WHERE finding, got %d", len(deletes))
	}
	if deletes[0].Query != "DELETE FROM sessions" {
		t.Errorf("Expected original statement text, got %q", deletes[0].Query)
	}
	if result.Findings[0].IssueType != "SELECT * Usage" {
		t.Error("Expected findings in statement order")
	}
}

func TestReview_EmptySQL(t *testing.T) {
	for _, sql := range []string{"", "   ", ";;", "-- only a comment"} {
		result, err := New().Review(context.Background(), sql, quiet())
		if err != nil {
			t.Fatalf("Review(%q) failed: %v", sql, err)
		}
		if !result.IsClean() {
			t.Errorf("Review(%q) expected clean result, got %s", sql, result)
		}
	}
}

func TestReview_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Review(ctx, "SELECT * FROM a; SELECT * FROM b", quiet())
	if err != context.Canceled {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected partial result on cancellation")
	}
}

func TestReview_Disabled(t *testing.T) {
	r := New().WithConfigObject(&config.Config{Disabled: []string{"SELECT * Usage"}})
	result, err := r.Review(context.Background(), "SELECT * FROM users", quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if !result.IsClean() {
		t.Errorf("Expected disabled check to be skipped, got %s", result)
	}

	result, err = New().Review(context.Background(), "SELECT * FROM users", quiet(),
		WithDisabled(string(advisor.StatementSelectStar)))
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if !result.IsClean() {
		t.Errorf("Expected option-disabled check to be skipped, got %s", result)
	}
}

func TestReview_MinSeverity(t *testing.T) {
	sql := "SELECT * FROM users; DELETE FROM sessions"

	r := New().WithConfigObject(&config.Config{MinSeverity: "high"})
	result, err := r.Review(context.Background(), sql, quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if len(result.FilterBySeverity(types.SeverityMedium)) != 0 {
		t.Error("Expected MEDIUM findings to be dropped")
	}
	if !result.HasSeverityAtLeast(types.SeverityCritical) {
		t.Error("Expected the CRITICAL finding to be kept")
	}

	result, err = r.Review(context.Background(), sql, quiet(), WithMinSeverity(types.SeverityLow))
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if len(result.FilterBySeverity(types.SeverityMedium)) == 0 {
		t.Error("Expected WithMinSeverity to override the configured minimum")
	}
}

func TestReview_ParallelMatchesSequential(t *testing.T) {
	sql := "SELECT * FROM a; DELETE FROM b; SELECT * FROM c ORDER BY 1; SELECT id FROM d WHERE name LIKE '%x'"

	sequential, err := New().Review(context.Background(), sql, quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	r := New().WithConfigObject(&config.Config{Parallel: true, Workers: 4})
	parallel, err := r.Review(context.Background(), sql, quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}

	if len(parallel.Findings) != len(sequential.Findings) {
		t.Fatalf("Expected %d findings, got %d", len(sequential.Findings), len(parallel.Findings))
	}
	for i := range sequential.Findings {
		if *parallel.Findings[i] != *sequential.Findings[i] {
			t.Errorf("Finding %d differs: %+v vs %+v", i, parallel.Findings[i], sequential.Findings[i])
		}
	}
}

func TestReview_CustomRegistry(t *testing.T) {
	registry := advisor.NewRegistry()
	registry.Register("custom.truncate", truncateAdvisor{})

	result, err := New().Review(context.Background(), "TRUNCATE orders; SELECT * FROM users", quiet(), WithRegistry(registry))
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if len(result.Findings) != 1 || result.Findings[0].IssueType != "TRUNCATE" {
		t.Errorf("Expected only the custom check to run, got %+v", result.Findings)
	}
}

type truncateAdvisor struct{}

func (truncateAdvisor) Check(checkCtx advisor.Context) *types.Finding {
	if len(checkCtx.Normalized) >= 8 && checkCtx.Normalized[:8] == "TRUNCATE" {
		return types.Issue{Type: "TRUNCATE", Severity: types.SeverityHigh}.Finding(checkCtx.Original)
	}
	return nil
}

func TestWithConfig(t *testing.T) {
	r := New()
	if err := r.WithConfig("nonexistent.yaml"); err == nil {
		t.Error("Expected error for nonexistent config file")
	}

	path := filepath.Join(t.TempDir(), "slowql.yaml")
	if err := os.WriteFile(path, []byte("disabled:\n  - statement.select-star\nsplit: simple\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.WithConfig(path); err != nil {
		t.Fatalf("WithConfig() failed: %v", err)
	}
	if r.Config().SplitMode() != config.SplitSimple {
		t.Errorf("Expected split mode simple, got %q", r.Config().SplitMode())
	}
	result, err := r.Review(context.Background(), "SELECT * FROM users", quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if !result.IsClean() {
		t.Errorf("Expected clean result, got %s", result)
	}
}

func TestWithConfigObject_Nil(t *testing.T) {
	r := New().WithConfigObject(nil)
	if r.Config() == nil {
		t.Fatal("Expected default config after WithConfigObject(nil)")
	}
}

func TestSplit(t *testing.T) {
	sql := "SELECT 'a;b' FROM t; -- note\nSELECT 2"

	for _, mode := range []config.SplitMode{config.SplitAuto, config.SplitMySQL, config.SplitPostgres, config.SplitSimple} {
		statements, err := Split(sql, mode)
		if err != nil {
			t.Fatalf("Split(%s) failed: %v", mode, err)
		}
		if len(statements) != 2 {
			t.Fatalf("Split(%s) expected 2 statements, got %d: %q", mode, len(statements), statements)
		}
		if statements[0] != "SELECT 'a;b' FROM t" {
			t.Errorf("Split(%s) first statement = %q", mode, statements[0])
		}
	}

	if _, err := Split(sql, config.SplitMode("regex")); err == nil {
		t.Error("Expected error for unknown split mode")
	}
}

func TestSplit_DollarDelimiter(t *testing.T) {
	tests := []struct {
		sql  string
		want []string
	}{
		{
			sql:  "DELIMITER $$\nUPDATE users SET a = 1$$\nDELIMITER ;\nSELECT 1;",
			want: []string{"UPDATE users SET a = 1", "SELECT 1"},
		},
		{
			sql:  "DELIMITER $$\nCREATE PROCEDURE p() BEGIN SELECT * FROM t; END$$\nDELIMITER ;",
			want: []string{"CREATE PROCEDURE p() BEGIN SELECT * FROM t; END"},
		},
	}

	for _, tt := range tests {
		for _, mode := range []config.SplitMode{config.SplitAuto, config.SplitMySQL} {
			statements, err := Split(tt.sql, mode)
			if err != nil {
				t.Fatalf("Split(%s) failed: %v", mode, err)
			}
			if !slices.Equal(statements, tt.want) {
				t.Errorf("Split(%s) = %q, want %q", mode, statements, tt.want)
			}
		}
	}
}

func TestReview_DelimiterBlockReachesDetector(t *testing.T) {
	r := New()
	result, err := r.Review(context.Background(), "DELIMITER $$\nUPDATE users SET a = 1$$\nDELIMITER ;\nSELECT 1;", quiet())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if result.Statements != 2 {
		t.Errorf("Expected 2 statements, got %d", result.Statements)
	}
	if len(result.FilterByIssueType("Missing WHERE in UPDATE/DELETE")) != 1 {
		t.Errorf("Expected a missing WHERE finding, got %v", result.Findings)
	}
}

func TestSplit_AutoFallbackOnUnusedDelimiter(t *testing.T) {
	sql := "DELIMITER $$\nUPDATE users SET a = 1\nDELIMITER ;\nSELECT 1;"
	if _, err := Split(sql, config.SplitMySQL); err == nil {
		t.Fatal("Expected MySQL splitter to reject a delimiter that never terminates a statement")
	}
	statements, err := Split(sql, config.SplitAuto)
	if err != nil {
		t.Fatalf("Split(auto) failed: %v", err)
	}
	if len(statements) == 0 {
		t.Fatal("Expected the fallback splitter to keep the statements")
	}
}

func TestSplit_PostgresDollarQuoting(t *testing.T) {
	sql := "CREATE FUNCTION f() RETURNS int AS $$ BEGIN DELETE FROM t; RETURN 1; END $$ LANGUAGE plpgsql; SELECT f()"
	statements, err := Split(sql, config.SplitPostgres)
	if err != nil {
		t.Fatalf("Split(postgres) failed: %v", err)
	}
	if len(statements) != 2 {
		t.Errorf("Expected 2 statements, got %q", statements)
	}
}

func TestSplit_AutoFallback(t *testing.T) {
	sql := "SELECT 1; END IF; SELECT 2"
	if _, err := Split(sql, config.SplitMySQL); err == nil {
		t.Fatal("Expected MySQL splitter to reject an unbalanced block")
	}
	statements, err := Split(sql, config.SplitAuto)
	if err != nil {
		t.Fatalf("Split(auto) failed: %v", err)
	}
	if len(statements) != 3 {
		t.Errorf("Expected fallback to split 3 statements, got %q", statements)
	}
}

func TestReview_ConcurrentUsage(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Review(context.Background(), "SELECT * FROM users", quiet()); err != nil {
				t.Errorf("Review() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := r.Stats().Breakdown["SELECT * Usage"]; got != 10 {
		t.Errorf("Expected 10 recorded findings, got %d", got)
	}
}
