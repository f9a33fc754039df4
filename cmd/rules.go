package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/detector"
	"github.com/nsxbet/slowql/pkg/logger"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [check]",
	Short: "List the available anti-pattern checks",
	Long: `List every registered check in the order it runs, or show one check
selected by its type (e.g. "statement.select-star") or issue name
(e.g. "SELECT * Usage").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if len(args) == 1 {
			return showRule(cmd.OutOrStdout(), args[0], format)
		}
		return listRules(cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringP("format", "f", "text", "output format (text, json, markdown)")
}

// ruleInfo is the JSON form of a check.
type ruleInfo struct {
	Type        string `json:"type"`
	Issue       string `json:"issue"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Fix         string `json:"fix"`
	Impact      string `json:"impact"`
}

func registeredRules() []ruleInfo {
	d := detector.New(detector.WithLogger(logger.Discard()))
	var rules []ruleInfo
	for _, entry := range d.Checks() {
		rules = append(rules, newRuleInfo(entry))
	}
	return rules
}

func newRuleInfo(entry advisor.Entry) ruleInfo {
	info := ruleInfo{Type: string(entry.Type)}
	if issue, ok := entry.Issue(); ok {
		info.Issue = issue.Type
		info.Severity = issue.Severity.String()
		info.Description = issue.Description
		info.Fix = issue.Fix
		info.Impact = issue.Impact
	}
	return info
}

func listRules(w io.Writer, format string) error {
	rules := registeredRules()
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	case "markdown", "md":
		fmt.Fprintln(w, rulesTable(rules).RenderMarkdown())
		return nil
	case "text", "":
		t := rulesTable(rules)
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	}
	return errors.Errorf("unsupported output format: %s", format)
}

func rulesTable(rules []ruleInfo) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Type", "Issue", "Severity", "Fix"})
	for i, r := range rules {
		t.AppendRow(table.Row{i + 1, r.Type, r.Issue, r.Severity, r.Fix})
	}
	return t
}

// findRule resolves a check by its type, then by its case-insensitive issue name.
func findRule(name string) (ruleInfo, bool) {
	advType := advisor.Type(name)
	if a, ok := advisor.DefaultRegistry.Lookup(advType); ok {
		return newRuleInfo(advisor.Entry{Type: advType, Advisor: a}), true
	}
	for _, r := range registeredRules() {
		if strings.EqualFold(r.Issue, name) {
			return r, true
		}
	}
	return ruleInfo{}, false
}

func showRule(w io.Writer, name, format string) error {
	r, ok := findRule(name)
	if !ok {
		return errors.Errorf("unknown check %q", name)
	}
	if strings.ToLower(format) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	fmt.Fprintf(w, "%s (%s)\n\n", r.Issue, r.Type)
	fmt.Fprintf(w, "Severity:    %s\n", r.Severity)
	fmt.Fprintf(w, "Description: %s\n", r.Description)
	fmt.Fprintf(w, "Fix:         %s\n", r.Fix)
	fmt.Fprintf(w, "Impact:      %s\n", r.Impact)
	return nil
}
