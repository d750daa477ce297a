// Package core provides the built-in utilities and modifiers.
package core

import (
	"github.com/alexisbeaulieu97/utilicss/internal/registry"
)

const (
	UtilitiesName = "core/utilities"
	ModifiersName = "core/modifiers"
)

// Utilities returns the preset registering the built-in utilities.
func Utilities() registry.Preset {
	return registry.PresetFunc{ID: UtilitiesName, Fn: registerUtilities}
}

// Modifiers returns the preset registering the built-in modifiers.
func Modifiers() registry.Preset {
	return registry.PresetFunc{ID: ModifiersName, Fn: registerModifiers}
}

// Presets returns every built-in preset in load order.
func Presets() []registry.Preset {
	return []registry.Preset{Utilities(), Modifiers()}
}
