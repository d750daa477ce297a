package engine

import (
	"errors"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/alexisbeaulieu97/utilicss/internal/cache"
	"github.com/alexisbeaulieu97/utilicss/internal/logger"
	"github.com/alexisbeaulieu97/utilicss/internal/parser"
	"github.com/alexisbeaulieu97/utilicss/internal/registry"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
	cssErrors "github.com/alexisbeaulieu97/utilicss/pkg/errors"
)

// Engine compiles class strings against a frozen registry and a context.
// It is safe for concurrent use.
type Engine struct {
	id          uint64
	registry    *registry.Registry
	ctx         registry.Context
	cache       *cache.Cache
	logger      *logger.Logger
	concurrency int
}

var engineIDs atomic.Uint64

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for skipped segments and plugin faults.
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		e.logger = log
	}
}

// WithCache memoizes Compile results by class string. A cache may be shared
// between engines; entries are keyed per engine so a class compiled under one
// context is never served to another.
func WithCache(c *cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithConcurrency bounds the number of classes CompileAll works on at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New returns an engine over reg. The registry is finalized so no plugin can
// be registered while compilation runs.
func New(reg *registry.Registry, ctx registry.Context, opts ...Option) *Engine {
	reg.Finalize()
	e := &Engine{
		id:          engineIDs.Add(1),
		registry:    reg,
		ctx:         ctx,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile resolves one class string into its style tree. Unknown utilities,
// unsupported values, malformed tokens and plugin faults all yield nil.
func (e *Engine) Compile(class string) []style.Node {
	return e.compileEntry(class).Nodes
}

func (e *Engine) compileEntry(class string) cache.Entry {
	key := strconv.FormatUint(e.id, 36) + ":" + class
	if entry, ok := e.cache.Get(key); ok {
		return entry
	}
	entry := e.compile(class)
	e.cache.Set(key, entry)
	return entry
}

func (e *Engine) compile(class string) cache.Entry {
	log := e.logger.WithField("class", class)

	parsed := parser.Parse(class, parser.WithPrefixes(e.registry.Prefixes()))
	if parsed.Utility == nil {
		log.Debug("class did not parse")
		return cache.Entry{}
	}
	tok := *parsed.Utility

	utility := e.registry.FindUtility(tok)
	if utility == nil {
		log.Debug("no utility matched")
		return cache.Entry{}
	}

	nodes, err := utility.Resolve(e.ctx, tok)
	if err != nil {
		e.fault(log, class, err)
		return cache.Entry{}
	}
	nodes = style.Flatten(nodes)
	if len(nodes) == 0 {
		log.Debug("utility rejected value")
		return cache.Entry{}
	}
	if tok.Important || e.importantByDefault() {
		nodes = markImportant(nodes)
	}

	var layers [][]style.Node
	for _, seg := range parsed.Modifiers {
		m := e.registry.FindModifier(seg, e.ctx)
		if m == nil {
			log.WithField("modifier", seg.Raw).Debug("modifier skipped")
			continue
		}
		wrappers, err := m.Wrappers(seg, e.ctx)
		if err != nil {
			e.fault(log, class, err)
			return cache.Entry{}
		}
		if len(wrappers) == 0 {
			continue
		}
		layers = append(layers, wrappers)
	}

	return cache.Entry{Nodes: style.Flatten(wrap(nodes, layers)), Priority: utility.Priority}
}

// wrap applies layers innermost first. Each wrapper receives its own copy of
// the result so far; several wrappers in one layer become sibling roots.
func wrap(nodes []style.Node, layers [][]style.Node) []style.Node {
	result := nodes
	for i := len(layers) - 1; i >= 0; i-- {
		next := make([]style.Node, 0, len(layers[i]))
		for _, w := range layers[i] {
			inner := &style.Group{Children: style.CloneAll(result)}
			next = append(next, style.WithChildren(w, []style.Node{inner}))
		}
		result = next
	}
	return result
}

func markImportant(nodes []style.Node) []style.Node {
	out := make([]style.Node, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *style.Declaration:
			c := style.Clone(n).(*style.Declaration)
			c.Important = true
			out = append(out, c)
		default:
			if style.IsBranch(n) {
				out = append(out, style.WithChildren(n, markImportant(style.Children(n))))
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) importantByDefault() bool {
	if e.ctx == nil {
		return false
	}
	v, ok := e.ctx.Config("important")
	if !ok {
		return false
	}
	important, _ := v.(bool)
	return important
}

func (e *Engine) fault(log *logger.Logger, class string, err error) {
	var pluginErr *cssErrors.PluginError
	if errors.As(err, &pluginErr) {
		err = pluginErr.WithClass(class)
		log = log.WithField("plugin", pluginErr.Plugin)
	}
	log.Warn(err, "plugin fault, class produces no styles")
}
