package advisor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/nsxbet/slowql/pkg/types"
)

// Context is what a check sees for one query.
type Context struct {
	// Normalized is the comment-free, single-spaced text used for matching.
	Normalized string
	// Original is the query exactly as submitted; findings report it verbatim.
	Original string
}

// Advisor is a single anti-pattern check.
//
// Check returns nil when the pattern is absent. It must be free of side effects,
// must not depend on any other advisor and must not panic for any input,
// including the empty string.
type Advisor interface {
	Check(checkCtx Context) *types.Finding
}

// Describer is implemented by advisors that publish the metadata of the issue
// they report, for listings and documentation.
type Describer interface {
	Issue() types.Issue
}

// Entry is one registered advisor.
type Entry struct {
	Type    Type
	Advisor Advisor
}

// Issue returns the published issue metadata of the entry, if any.
func (e Entry) Issue() (types.Issue, bool) {
	d, ok := e.Advisor.(Describer)
	if !ok {
		return types.Issue{}, false
	}
	return d.Issue(), true
}

// Registry keeps advisors in registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []Type
	entries map[Type]Advisor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Type]Advisor),
	}
}

// Register appends an advisor to the registry.
// If Register is called twice with the same type or if advisor is nil,
// it panics.
func (r *Registry) Register(advType Type, a Advisor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a == nil {
		panic("advisor: Register advisor is nil")
	}
	if _, dup := r.entries[advType]; dup {
		panic(fmt.Sprintf("advisor: Register called twice for advisor %v", advType))
	}
	r.entries[advType] = a
	r.order = append(r.order, advType)
}

// Entries returns a snapshot of the registered advisors in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Entry, 0, len(r.order))
	for _, t := range r.order {
		list = append(list, Entry{Type: t, Advisor: r.entries[t]})
	}
	return list
}

// Lookup returns the advisor registered for the type.
func (r *Registry) Lookup(advType Type) (Advisor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.entries[advType]
	return a, ok
}

// Len returns the number of registered advisors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// DefaultRegistry holds the built-in advisors, registered from init functions.
var DefaultRegistry = NewRegistry()

// Register makes an advisor available in the default registry.
func Register(advType Type, a Advisor) {
	DefaultRegistry.Register(advType, a)
}

// Check runs one advisor and converts a panic into an error naming the advisor.
func Check(advType Type, a Advisor, checkCtx Context) (finding *types.Finding, err error) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panicErr, ok := panicErr.(error)
			if !ok {
				panicErr = errors.Errorf("%v", panicErr)
			}
			finding = nil
			err = errors.Errorf("advisor check PANIC RECOVER, type: %v, err: %v", advType, panicErr)
			slog.Debug("advisor check PANIC RECOVER", "type", advType, "error", panicErr)
		}
	}()

	if a == nil {
		return nil, errors.Errorf("advisor: unknown advisor %v", advType)
	}
	return a.Check(checkCtx), nil
}
