package report

import (
	"strings"

	"github.com/pkg/errors"
)

// Format is a report output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatHTML     Format = "html"
	FormatSARIF    Format = "sarif"
	FormatMarkdown Format = "markdown"
)

var formatExtensions = map[Format]string{
	FormatText:     "txt",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatCSV:      "csv",
	FormatHTML:     "html",
	FormatSARIF:    "sarif",
	FormatMarkdown: "md",
}

// ParseFormat converts a case-insensitive format name. "md" and "yml" are accepted
// as aliases.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		if _, ok := formatExtensions[f]; ok {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown report format %q", name)
}

// Extension returns the file extension used when exporting the format.
func (f Format) Extension() string {
	return formatExtensions[f]
}
