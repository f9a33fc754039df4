package reviewer

import (
	"github.com/nsxbet/slowql/pkg/advisor"
	"github.com/nsxbet/slowql/pkg/logger"
	"github.com/nsxbet/slowql/pkg/types"
)

// ReviewOption is a functional option for customizing review behavior.
type ReviewOption func(*reviewOptions)

// reviewOptions holds optional configuration for a review operation.
type reviewOptions struct {
	disabled     []string
	minSeverity  types.Severity
	registry     *advisor.Registry
	logger       logger.Interface
	queryLogging bool
}

// WithDisabled turns off checks for this review in addition to those disabled by
// the configuration. Names are check types or issue names.
//
// Example:
//
//	result, err := r.Review(ctx, sql, WithDisabled("statement.select-star", "ORDER BY Ordinal"))
func WithDisabled(names ...string) ReviewOption {
	return func(opts *reviewOptions) {
		opts.disabled = append(opts.disabled, names...)
	}
}

// WithMinSeverity drops findings less severe than threshold, overriding the configured
// minimum severity.
//
// Example:
//
//	result, err := r.Review(ctx, sql, WithMinSeverity(types.SeverityHigh))
func WithMinSeverity(threshold types.Severity) ReviewOption {
	return func(opts *reviewOptions) {
		opts.minSeverity = threshold
	}
}

// WithRegistry runs the checks of registry instead of the built-in ones.
func WithRegistry(registry *advisor.Registry) ReviewOption {
	return func(opts *reviewOptions) {
		opts.registry = registry
	}
}

// WithLogger sets the logger that receives skipped-check warnings.
func WithLogger(l logger.Interface) ReviewOption {
	return func(opts *reviewOptions) {
		opts.logger = l
	}
}

// WithQueryLogging logs every analyzed statement at debug level to stderr.
//
// Example:
//
//	result, err := r.Review(ctx, sql, WithQueryLogging())
func WithQueryLogging() ReviewOption {
	return func(opts *reviewOptions) {
		opts.queryLogging = true
	}
}
