package types

import (
	"fmt"
	"strings"
)

// Severity represents how harmful a detected anti-pattern is.
//
// The zero value is SeverityUnspecified and is never produced by a check.
type Severity int32

const (
	SeverityUnspecified Severity = 0
	SeverityLow         Severity = 1
	SeverityMedium      Severity = 2
	SeverityHigh        Severity = 3
	SeverityCritical    Severity = 4
)

// Severities lists the known severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

var severityNames = map[Severity]string{
	SeverityUnspecified: "UNSPECIFIED",
	SeverityLow:         "LOW",
	SeverityMedium:      "MEDIUM",
	SeverityHigh:        "HIGH",
	SeverityCritical:    "CRITICAL",
}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int32(s))
}

// Rank is the report sort key: CRITICAL sorts first, LOW last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// AtLeast reports whether s is as severe as, or more severe than, other.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}

// ParseSeverity converts a case-insensitive severity name.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOW":
		return SeverityLow, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "HIGH":
		return SeverityHigh, nil
	case "CRITICAL":
		return SeverityCritical, nil
	}
	return SeverityUnspecified, fmt.Errorf("unknown severity %q", name)
}

// MarshalText encodes the severity by name for JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Finding is one detected anti-pattern in one query.
//
// A Finding is produced once by exactly one check and must not be modified
// after it has been returned.
type Finding struct {
	IssueType   string   `json:"issue_type" yaml:"issue_type"`
	Query       string   `json:"query" yaml:"query"`
	Description string   `json:"description" yaml:"description"`
	Fix         string   `json:"fix" yaml:"fix"`
	Impact      string   `json:"impact" yaml:"impact"`
	Severity    Severity `json:"severity" yaml:"severity"`
	// LineNumber is reserved for multi-line attribution and is currently always nil.
	LineNumber *int `json:"line_number,omitempty" yaml:"line_number,omitempty"`
}

// Issue is the fixed metadata a check attaches to every finding it emits.
type Issue struct {
	Type        string
	Description string
	Fix         string
	Impact      string
	Severity    Severity
}

// Finding builds a finding for the given original query text.
func (i Issue) Finding(query string) *Finding {
	return &Finding{
		IssueType:   i.Type,
		Query:       query,
		Description: i.Description,
		Fix:         i.Fix,
		Impact:      i.Impact,
		Severity:    i.Severity,
	}
}
