package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/slowql/pkg/config"
	"github.com/nsxbet/slowql/pkg/logger"
	"github.com/nsxbet/slowql/pkg/report"
	"github.com/nsxbet/slowql/pkg/reviewer"
	"github.com/nsxbet/slowql/pkg/types"
)

// stdinArg names standard input as an analyze argument.
const stdinArg = "-"

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [sql-file ...]",
	Short: "Analyze SQL queries for anti-patterns",
	Long: `Analyze the SQL statements in the given files, or on standard input
when no file or "-" is given, and report the anti-patterns found.

Findings are grouped by issue and sorted by severity. With --fail-on the
command exits with a non-zero code when a finding at or above that
severity exists.`,
	Example: `  slowql analyze queries.sql
  cat queries.sql | slowql analyze -o json
  slowql analyze --export html,sarif --out reports migrations/*.sql
  slowql analyze --fail-on high --min-severity medium queries.sql
  slowql analyze --watch queries.sql`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags for analyze command
	analyzeCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml, csv, html, sarif, markdown)")
	analyzeCmd.Flags().StringP("rules", "r", "", "path to analysis configuration file (YAML or JSON)")
	analyzeCmd.Flags().StringSlice("export", nil, "also write the report to files in these formats")
	analyzeCmd.Flags().String("out", "", "directory for exported reports (default \"reports\")")
	analyzeCmd.Flags().Bool("parallel", false, "analyze statements on a worker pool")
	analyzeCmd.Flags().Int("workers", 0, "number of workers with --parallel (default GOMAXPROCS)")
	analyzeCmd.Flags().StringSlice("disable", nil, "checks to skip, by type or issue name")
	analyzeCmd.Flags().String("min-severity", "", "drop findings below this severity (low, medium, high, critical)")
	analyzeCmd.Flags().String("fail-on", "", "exit with non-zero code if a finding at or above this severity exists")
	analyzeCmd.Flags().String("split", "", "statement splitter (auto, mysql, postgres, simple)")
	analyzeCmd.Flags().Bool("watch", false, "re-analyze whenever an input file changes")
	analyzeCmd.Flags().Bool("suggest-indexes", false, "print index suggestions for index-related findings")

	// Bind flags to viper
	for _, name := range []string{
		"output", "rules", "export", "out", "parallel", "workers", "disable",
		"min-severity", "fail-on", "split", "watch", "suggest-indexes",
	} {
		_ = viper.BindPFlag(name, analyzeCmd.Flags().Lookup(name))
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := setupLogger()
	slog.Debug("Starting analyze command", "args", args)

	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{stdinArg}
	}

	a := &analyzer{
		reviewer:       reviewer.New().WithConfigObject(cfg),
		renderer:       newRenderer(cmd.OutOrStdout(), format),
		config:         cfg,
		format:         format,
		suggestIndexes: viper.GetBool("suggest-indexes"),
		logger:         log,
		stdin:          cmd.InOrStdin(),
		out:            cmd.OutOrStdout(),
		errOut:         cmd.ErrOrStderr(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if viper.GetBool("watch") {
		return a.watch(ctx, args)
	}

	findings, err := a.run(ctx, args)
	if err != nil {
		return err
	}
	return checkFailOn(findings, cfg.FailOnLevel())
}

// loadConfiguration reads the --rules file, or the defaults, and applies the
// flags, environment and config file values set through viper on top.
func loadConfiguration() (*config.Config, error) {
	cfg := config.Default()
	if path := viper.GetString("rules"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if viper.IsSet("disable") {
		cfg.Disabled = append(cfg.Disabled, viper.GetStringSlice("disable")...)
	}
	if v := viper.GetString("min-severity"); v != "" {
		cfg.MinSeverity = v
	}
	if v := viper.GetString("fail-on"); v != "" {
		cfg.FailOn = v
	}
	if v := viper.GetString("split"); v != "" {
		cfg.Split = config.SplitMode(v)
	}
	if viper.GetBool("parallel") {
		cfg.Parallel = true
	}
	if v := viper.GetInt("workers"); v != 0 {
		cfg.Workers = v
	}
	if v := viper.GetStringSlice("export"); len(v) > 0 {
		cfg.Export = v
	}
	if v := viper.GetString("out"); v != "" {
		cfg.Out = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newRenderer(out io.Writer, format report.Format) *report.Renderer {
	r := report.NewRenderer()
	r.Version = version
	r.Color = format == report.FormatText && logger.IsTerminal(out)
	return r
}

// analyzer runs one analysis pass over a set of inputs.
type analyzer struct {
	reviewer       *reviewer.Reviewer
	renderer       *report.Renderer
	config         *config.Config
	format         report.Format
	suggestIndexes bool
	logger         logger.Interface
	stdin          io.Reader
	out            io.Writer
	errOut         io.Writer
}

// run analyzes every input, renders the report and writes the configured exports.
// Export failures are logged and do not fail the run.
func (a *analyzer) run(ctx context.Context, inputs []string) ([]*types.Finding, error) {
	var findings []*types.Finding
	for _, input := range inputs {
		sql, err := a.read(input)
		if err != nil {
			return nil, err
		}
		result, err := a.reviewer.Review(ctx, sql)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to analyze %s", displayName(input))
		}
		a.logger.Info("analyzed input", "input", displayName(input), "statements", result.Statements, "findings", result.Summary.Total)
		findings = append(findings, result.Findings...)
	}

	rows := report.Group(findings)
	report.SortBySeverity(rows)
	if err := a.renderer.Render(a.out, rows, a.format); err != nil {
		return nil, err
	}
	if a.suggestIndexes {
		for _, line := range reviewer.SuggestIndexes(rows) {
			fmt.Fprintln(a.out, line)
		}
	}

	for _, name := range a.config.Export {
		format, err := report.ParseFormat(name)
		if err != nil {
			a.logger.Error("skipping export", "format", name, logger.Error(err))
			continue
		}
		path, err := a.renderer.Export(rows, format, a.config.Out)
		if err != nil {
			a.logger.Error("export failed", "format", format, logger.Error(err))
			continue
		}
		fmt.Fprintf(a.errOut, "Report exported to %s\n", path)
	}
	return findings, nil
}

func (a *analyzer) read(input string) (string, error) {
	if input == stdinArg {
		if f, ok := a.stdin.(*os.File); ok && logger.IsTerminal(f) {
			fmt.Fprintln(a.errOut, "Reading SQL from standard input, finish with Ctrl-D")
		}
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read standard input")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read SQL file: %s", input)
	}
	return string(data), nil
}

// watch runs the analysis, then again after every change to an input file,
// until ctx is cancelled.
func (a *analyzer) watch(ctx context.Context, inputs []string) error {
	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, input := range inputs {
		if input == stdinArg {
			return errors.New("--watch needs file arguments, not standard input")
		}
		abs, err := filepath.Abs(input)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve %s", input)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = watcher.Close() }()

	// Directories are watched so files replaced by editors keep being tracked.
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	if _, err := a.run(ctx, inputs); err != nil {
		a.logger.Error("analysis failed", logger.Error(err))
	}

	changed := make(chan struct{}, 1)
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !files[abs] {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})
		case <-changed:
			a.logger.Info("change detected, re-analyzing")
			if _, err := a.run(ctx, inputs); err != nil {
				a.logger.Error("analysis failed", logger.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", logger.Error(err))
		}
	}
}

// checkFailOn returns an error when a finding is at least as severe as threshold.
func checkFailOn(findings []*types.Finding, threshold types.Severity) error {
	if threshold == types.SeverityUnspecified {
		return nil
	}
	count := 0
	for _, f := range findings {
		if f.Severity.AtLeast(threshold) {
			count++
		}
	}
	if count > 0 {
		return errors.Errorf("%d finding(s) at or above %s", count, threshold)
	}
	return nil
}

func displayName(input string) string {
	if input == stdinArg {
		return "<stdin>"
	}
	return input
}
