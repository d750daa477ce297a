package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/utilicss/internal/logger"
	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// ErrRegistryFrozen is returned when registering after Finalize.
var ErrRegistryFrozen = errors.New("registry is frozen")

// Context is the theme and configuration lookup facade handed to every
// handler. Implementations must be deterministic and side-effect free.
type Context interface {
	Theme(key, subkey string) (string, bool)
	Config(path string) (any, bool)
}

// Registry holds utilities and modifier plugins. Registration is append-only
// and order defines precedence: lookups are first-match-wins.
//
// Registration must complete, and Finalize be called, before concurrent
// compilation starts. After Finalize the registry is read-only.
type Registry struct {
	mu        sync.RWMutex
	utilities []*Utility
	modifiers []*Modifier
	names     map[string]struct{}
	prefixes  []string
	frozen    bool
	config    *Config
	logger    *logger.Logger
}

// New returns an empty registry.
func New(config *Config, log *logger.Logger) *Registry {
	if config == nil {
		config = DefaultConfig()
	}
	return &Registry{
		names:  make(map[string]struct{}),
		config: config,
		logger: log,
	}
}

// RegisterUtility appends a utility registration.
func (r *Registry) RegisterUtility(u *Utility) error {
	if u == nil {
		return fmt.Errorf("utility is nil")
	}
	if u.Name == "" {
		return cssErrors.NewValidationError("name", "utility requires a name", nil)
	}
	if u.Match == nil || u.Handler == nil {
		return cssErrors.NewValidationError(u.Name, "utility requires Match and Handler", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	r.utilities = append(r.utilities, u)
	r.names[u.Name] = struct{}{}
	r.prefixes = nil
	return nil
}

// RegisterModifier appends a modifier plugin.
func (r *Registry) RegisterModifier(m *Modifier) error {
	if m == nil {
		return fmt.Errorf("modifier is nil")
	}
	if err := m.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	r.modifiers = append(r.modifiers, m)
	return nil
}

// Utilities returns the registered utilities in registration order.
func (r *Registry) Utilities() []*Utility {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.frozen {
		return r.utilities
	}
	return append([]*Utility(nil), r.utilities...)
}

// Modifiers returns the registered modifier plugins in registration order.
func (r *Registry) Modifiers() []*Modifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.frozen {
		return r.modifiers
	}
	return append([]*Modifier(nil), r.modifiers...)
}

// Prefixes returns every registered utility name, longest first. The parser
// uses it to split multi-segment names such as "bg-linear-to-r".
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	if r.prefixes != nil || r.frozen {
		defer r.mu.RUnlock()
		return r.prefixes
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefixes = r.sortedNames()
	return r.prefixes
}

// Finalize freezes the registry. It is safe to call more than once.
func (r *Registry) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return
	}
	r.prefixes = r.sortedNames()
	r.frozen = true
}

// Frozen reports whether Finalize has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// FindUtility returns the first utility whose Match accepts tok. Faulting
// matchers are logged and skipped.
func (r *Registry) FindUtility(tok parser.UtilityToken) *Utility {
	for _, u := range r.Utilities() {
		ok, err := u.Matches(tok)
		if err != nil {
			r.logWarn(err, "utility matcher failed")
			continue
		}
		if ok {
			return u
		}
	}
	return nil
}

// FindModifier returns the first modifier plugin accepting seg.
func (r *Registry) FindModifier(seg parser.Segment, ctx Context) *Modifier {
	for _, m := range r.Modifiers() {
		ok, err := m.Matches(seg, ctx)
		if err != nil {
			r.logWarn(err, "modifier matcher failed")
			continue
		}
		if ok {
			return m
		}
	}
	return nil
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

func (r *Registry) logWarn(err error, msg string) {
	if r.logger == nil {
		return
	}
	r.logger.Warn(err, msg)
}
