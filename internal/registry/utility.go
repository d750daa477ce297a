package registry

import (
	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// MatchFunc reports whether a utility accepts a token.
type MatchFunc func(tok parser.UtilityToken) bool

// HandlerFunc produces the declarations for a matched token. A nil or empty
// result means the value is unsupported; an error is a plugin fault.
type HandlerFunc func(value string, ctx Context, tok parser.UtilityToken, u *Utility) ([]style.Node, error)

// Utility is a single utility registration.
type Utility struct {
	Name     string
	Match    MatchFunc
	Handler  HandlerFunc
	Priority int
}

// Matches calls Match inside a fault boundary.
func (u *Utility) Matches(tok parser.UtilityToken) (ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ok = false
			err = cssErrors.NewPluginError(u.Name, cssErrors.PhaseMatch, &cssErrors.PanicError{Value: rec})
		}
	}()
	return u.Match(tok), nil
}

// Resolve calls Handler inside a fault boundary.
func (u *Utility) Resolve(ctx Context, tok parser.UtilityToken) (nodes []style.Node, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			nodes = nil
			err = cssErrors.NewPluginError(u.Name, cssErrors.PhaseHandle, &cssErrors.PanicError{Value: rec})
		}
	}()

	nodes, err = u.Handler(tok.Value, ctx, tok, u)
	if err != nil {
		return nil, cssErrors.NewPluginError(u.Name, cssErrors.PhaseHandle, err)
	}
	return nodes, nil
}

// StaticOptions declares a utility matched by exact name that always emits
// the same declarations.
type StaticOptions struct {
	Name         string           `validate:"required,utility_name"`
	Declarations []style.Property `validate:"required,min=1"`
	Priority     int
}

// StaticUtility registers a static utility.
func (r *Registry) StaticUtility(opts StaticOptions) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	decls := append([]style.Property(nil), opts.Declarations...)
	return r.RegisterUtility(&Utility{
		Name:     opts.Name,
		Priority: opts.Priority,
		Match: func(tok parser.UtilityToken) bool {
			return tok.Raw == opts.Name
		},
		Handler: func(string, Context, parser.UtilityToken, *Utility) ([]style.Node, error) {
			nodes := make([]style.Node, 0, len(decls))
			for _, d := range decls {
				nodes = append(nodes, style.Decl(d.Name, d.Value))
			}
			return nodes, nil
		},
	})
}
