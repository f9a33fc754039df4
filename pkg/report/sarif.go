package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool              sarifTool              `json:"tool"`
	AutomationDetails sarifAutomationDetails `json:"automationDetails"`
	Results           []sarifResult          `json:"results"`
}

type sarifAutomationDetails struct {
	GUID string `json:"guid"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
	Help             sarifMessage `json:"help"`
}

type sarifResult struct {
	RuleID     string          `json:"ruleId"`
	Level      string          `json:"level"`
	Message    sarifMessage    `json:"message"`
	Properties sarifProperties `json:"properties"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifProperties struct {
	Severity string `json:"severity"`
	Count    int    `json:"count"`
	Query    string `json:"query"`
	Impact   string `json:"impact"`
}

func (r *Renderer) renderSARIF(w io.Writer, rows []Row) error {
	rules := make([]sarifRule, 0, len(rows))
	results := make([]sarifResult, 0, len(rows))
	seen := make(map[string]bool)
	for _, row := range rows {
		id := RuleID(row.Issue)
		if !seen[id] {
			seen[id] = true
			rules = append(rules, sarifRule{
				ID:               id,
				Name:             row.Issue,
				ShortDescription: sarifMessage{Text: row.Description},
				Help:             sarifMessage{Text: row.Fix},
			})
		}
		results = append(results, sarifResult{
			RuleID:  id,
			Level:   sarifLevel(row),
			Message: sarifMessage{Text: fmt.Sprintf("%s. Fix: %s", row.Description, row.Fix)},
			Properties: sarifProperties{
				Severity: row.Severity.String(),
				Count:    row.Count,
				Query:    row.Query,
				Impact:   row.Impact,
			},
		})
	}

	log := sarifLog{
		Version: sarifVersion,
		Schema:  sarifSchema,
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:    ToolName,
						Version: r.Version,
						Rules:   rules,
					},
				},
				AutomationDetails: sarifAutomationDetails{GUID: r.NewRunID()},
				Results:           results,
			},
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func sarifLevel(row Row) string {
	switch row.Severity.Rank() {
	case 0, 1:
		return "error"
	case 2:
		return "warning"
	default:
		return "note"
	}
}

// RuleID converts an issue name into a stable identifier, e.g.
// "SELECT * Usage" becomes "select-usage".
func RuleID(issue string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(issue) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
