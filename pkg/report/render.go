package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/slowql/pkg/types"
)

// ToolName is reported as the producer in JSON and SARIF documents.
const ToolName = "slowql"

// Summary counts findings per severity.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Critical int `json:"critical" yaml:"critical"`
	High     int `json:"high" yaml:"high"`
	Medium   int `json:"medium" yaml:"medium"`
	Low      int `json:"low" yaml:"low"`
}

// Summarize counts the findings represented by rows.
func Summarize(rows []Row) Summary {
	counts := CountBySeverity(rows)
	return Summary{
		Total:    Total(rows),
		Critical: counts[types.SeverityCritical],
		High:     counts[types.SeverityHigh],
		Medium:   counts[types.SeverityMedium],
		Low:      counts[types.SeverityLow],
	}
}

// Document is the JSON and YAML report layout.
type Document struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Tool        string    `json:"tool" yaml:"tool"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Health      Health    `json:"health" yaml:"health"`
	Summary     Summary   `json:"summary" yaml:"summary"`
	Issues      []Row     `json:"issues" yaml:"issues"`
}

// Renderer writes reports in every supported format.
type Renderer struct {
	// Color enables ANSI styling of severities in the text format.
	Color bool
	// Version is reported as the tool version in SARIF output.
	Version string
	// Now and NewRunID are replaceable for reproducible output.
	Now      func() time.Time
	NewRunID func() string
}

// NewRenderer returns a Renderer using the wall clock and random run identifiers.
func NewRenderer() *Renderer {
	return &Renderer{
		Version:  "dev",
		Now:      time.Now,
		NewRunID: uuid.NewString,
	}
}

// Render writes rows to w in the given format. Rows are rendered in the order given.
func (r *Renderer) Render(w io.Writer, rows []Row, format Format) error {
	switch format {
	case FormatText, "":
		return r.renderText(w, rows)
	case FormatJSON:
		return r.renderJSON(w, rows)
	case FormatYAML:
		return r.renderYAML(w, rows)
	case FormatCSV:
		return renderCSV(w, rows)
	case FormatHTML:
		return r.renderHTML(w, rows)
	case FormatSARIF:
		return r.renderSARIF(w, rows)
	case FormatMarkdown:
		return r.renderMarkdown(w, rows)
	}
	return errors.Errorf("unknown report format %q", format)
}

func (r *Renderer) document(rows []Row) Document {
	if rows == nil {
		rows = []Row{}
	}
	return Document{
		RunID:       r.NewRunID(),
		Tool:        ToolName,
		GeneratedAt: r.Now().UTC(),
		Health:      HealthScore(rows),
		Summary:     Summarize(rows),
		Issues:      rows,
	}
}

func (r *Renderer) renderText(w io.Writer, rows []Row) error {
	health := HealthScore(rows)
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No anti-patterns detected.\nHealth score: %d/100 (%s)\n", health.Score, health.Label)
		return err
	}

	styles := newSeverityStyles(w, r.Color)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", "Issue", "Count", "Example Query", "Fix", "Impact"})
	for _, row := range rows {
		t.AppendRow(table.Row{
			styles.render(row.Severity),
			row.Issue,
			row.Count,
			row.Query,
			row.Fix,
			row.Impact,
		})
	}
	s := Summarize(rows)
	t.AppendFooter(table.Row{"", "Total", s.Total})
	t.Render()

	_, err := fmt.Fprintf(w, "Critical: %d  High: %d  Medium: %d  Low: %d\nHealth score: %d/100 (%s)\n",
		s.Critical, s.High, s.Medium, s.Low, health.Score, health.Label)
	return err
}

func (r *Renderer) renderJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.document(rows))
}

func (r *Renderer) renderYAML(w io.Writer, rows []Row) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.document(rows)); err != nil {
		return errors.Wrap(err, "failed to encode YAML report")
	}
	return enc.Close()
}

var csvHeader = []string{"issue", "query", "description", "fix", "impact", "severity", "line_number", "count"}

func renderCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		line := ""
		if row.LineNumber != nil {
			line = strconv.Itoa(*row.LineNumber)
		}
		record := []string{
			row.Issue,
			row.Query,
			row.Description,
			row.Fix,
			row.Impact,
			row.Severity.String(),
			line,
			strconv.Itoa(row.Count),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r *Renderer) renderMarkdown(w io.Writer, rows []Row) error {
	health := HealthScore(rows)
	if _, err := fmt.Fprintf(w, "# SQL Anti-Pattern Report\n\n**Health score:** %d/100 (%s)\n\n", health.Score, health.Label); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No anti-patterns detected.")
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Severity", "Issue", "Count", "Example Query", "Fix", "Impact"})
	for _, row := range rows {
		t.AppendRow(table.Row{severityIcons[row.Severity] + " " + row.Severity.String(), row.Issue, row.Count, row.Query, row.Fix, row.Impact})
	}
	_, err := fmt.Fprintln(w, t.RenderMarkdown())
	return err
}

// severityIcons is the presentation lookup of icons per severity.
var severityIcons = map[types.Severity]string{
	types.SeverityCritical: "🔴",
	types.SeverityHigh:     "🟠",
	types.SeverityMedium:   "🟡",
	types.SeverityLow:      "🔵",
}

// severityColors is the presentation lookup of ANSI colors per severity.
var severityColors = map[types.Severity]lipgloss.Color{
	types.SeverityCritical: lipgloss.Color("9"),
	types.SeverityHigh:     lipgloss.Color("208"),
	types.SeverityMedium:   lipgloss.Color("11"),
	types.SeverityLow:      lipgloss.Color("12"),
}

type severityStyles struct {
	enabled bool
	styles  map[types.Severity]lipgloss.Style
}

func newSeverityStyles(w io.Writer, enabled bool) severityStyles {
	s := severityStyles{enabled: enabled, styles: make(map[types.Severity]lipgloss.Style)}
	if !enabled {
		return s
	}
	renderer := lipgloss.NewRenderer(w)
	for sev, color := range severityColors {
		style := renderer.NewStyle().Foreground(color)
		if sev == types.SeverityCritical {
			style = style.Bold(true)
		}
		s.styles[sev] = style
	}
	return s
}

func (s severityStyles) render(sev types.Severity) string {
	if !s.enabled {
		return sev.String()
	}
	return s.styles[sev].Render(sev.String())
}
