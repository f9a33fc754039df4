package detector

import (
	"strings"

	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/logger"
)

// Option is a functional option for customizing a Detector.
type Option func(*options)

type options struct {
	registry *advisor.Registry
	disabled []string
	logger   logger.Interface
}

// isDisabled matches a check by its type or, case-insensitively, by its issue name.
func (o *options) isDisabled(entry advisor.Entry) bool {
	issue, hasIssue := entry.Issue()
	for _, name := range o.disabled {
		if string(entry.Type) == name {
			return true
		}
		if hasIssue && strings.EqualFold(issue.Type, name) {
			return true
		}
	}
	return false
}

// WithRegistry uses the checks of r instead of the built-in ones.
//
// Example:
//
//	r := advisor.NewRegistry()
//	r.Register("custom.no-truncate", &noTruncate{})
//	d := detector.New(detector.WithRegistry(r))
func WithRegistry(r *advisor.Registry) Option {
	return func(opts *options) {
		if r != nil {
			opts.registry = r
		}
	}
}

// WithDisabled turns checks off. A name is either a check type such as
// "statement.select-star" or an issue name such as "SELECT * Usage".
func WithDisabled(names ...string) Option {
	return func(opts *options) {
		opts.disabled = append(opts.disabled, names...)
	}
}

// WithLogger sets the logger used for skipped checks.
func WithLogger(l logger.Interface) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}
