package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid theme settings or registration options.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Phase names the point at which a plugin failed.
type Phase string

const (
	PhaseRegister Phase = "register"
	PhaseMatch    Phase = "match"
	PhaseHandle   Phase = "handle"
	PhaseModify   Phase = "modify"
)

// PluginError indicates a fault raised by a preset, utility or modifier.
type PluginError struct {
	Plugin  string
	Phase   Phase
	Class   string
	Message string
	Err     error
}

// NewPluginError constructs a PluginError for the named plugin.
func NewPluginError(plugin string, phase Phase, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PluginError{Plugin: plugin, Phase: phase, Message: message, Err: err}
}

// WithClass returns a copy of e recording the class being compiled.
func (e *PluginError) WithClass(class string) *PluginError {
	c := *e
	c.Class = class
	return &c
}

func (e *PluginError) Error() string {
	if e == nil {
		return ""
	}
	where := ""
	if e.Phase != "" {
		where = " during " + string(e.Phase)
	}
	if e.Class != "" {
		where += fmt.Sprintf(" of %q", e.Class)
	}
	if e.Plugin != "" {
		return fmt.Sprintf("plugin error [%s]%s: %s", e.Plugin, where, e.Message)
	}
	return fmt.Sprintf("plugin error%s: %s", where, e.Message)
}

// Unwrap exposes the underlying error.
func (e *PluginError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PanicError wraps a value recovered from a panicking plugin.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return "panic: " + err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the recovered value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
