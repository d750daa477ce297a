package registry

import (
	"errors"
	"fmt"

	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// Preset is a bundle of utility and modifier registrations.
type Preset interface {
	Name() string
	Register(r *Registry) error
}

// PresetFunc adapts a function to Preset.
type PresetFunc struct {
	ID string
	Fn func(r *Registry) error
}

// Name implements Preset.
func (p PresetFunc) Name() string { return p.ID }

// Register implements Preset.
func (p PresetFunc) Register(r *Registry) error { return p.Fn(r) }

// Load registers presets in order. A preset that returns an error or panics
// has its partial registrations rolled back. Under PolicyGraceful the fault
// is logged and loading continues; under PolicyStrict it is returned.
func (r *Registry) Load(presets ...Preset) error {
	if r.Frozen() {
		return ErrRegistryFrozen
	}

	for _, p := range presets {
		if p == nil {
			continue
		}
		err := r.loadOne(p)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrRegistryFrozen) || r.config.Policy == PolicyStrict {
			return err
		}
		r.logWarn(err, fmt.Sprintf("preset %q disabled", p.Name()))
	}
	return nil
}

func (r *Registry) loadOne(p Preset) (err error) {
	r.mu.RLock()
	utilities, modifiers := len(r.utilities), len(r.modifiers)
	r.mu.RUnlock()

	defer func() {
		if rec := recover(); rec != nil {
			err = &cssErrors.PanicError{Value: rec}
		}
		if err != nil {
			r.rollback(utilities, modifiers)
			err = cssErrors.NewPluginError(p.Name(), cssErrors.PhaseRegister, err)
		}
	}()

	return p.Register(r)
}

func (r *Registry) rollback(utilities, modifiers int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return
	}
	r.utilities = r.utilities[:utilities]
	r.modifiers = r.modifiers[:modifiers]

	r.names = make(map[string]struct{}, len(r.utilities))
	for _, u := range r.utilities {
		r.names[u.Name] = struct{}{}
	}
	r.prefixes = nil
}
