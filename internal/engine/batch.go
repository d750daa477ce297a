package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/utilicss/internal/optimize"
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// Compiled pairs a class with its raw, unoptimized tree.
type Compiled struct {
	Class    string
	Nodes    []style.Node
	Priority int
}

// Result is one class ready for rendering.
type Result struct {
	Class    string
	Forest   []style.Node
	Priority int
}

// CompileAll compiles classes concurrently. Duplicates are dropped and the
// output follows first-appearance order. The only error is ctx's.
func (e *Engine) CompileAll(ctx context.Context, classes []string) ([]Compiled, error) {
	unique := dedupe(classes)
	out := make([]Compiled, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, class := range unique {
		i, class := i, class
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry := e.compileEntry(class)
			out[i] = Compiled{Class: class, Nodes: entry.Nodes, Priority: entry.Priority}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate compiles and optimizes classes. Classes without output are
// dropped; the rest are ordered by utility priority, then input order.
func (e *Engine) Generate(ctx context.Context, classes []string) ([]Result, error) {
	compiled, err := e.CompileAll(ctx, classes)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(compiled))
	for _, c := range compiled {
		forest := optimize.OptimizeAST(c.Nodes)
		if len(forest) == 0 {
			continue
		}
		results = append(results, Result{Class: c.Class, Forest: forest, Priority: c.Priority})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Priority < results[j].Priority
	})
	return results, nil
}

func dedupe(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" {
			continue
		}
		if _, ok := seen[class]; ok {
			continue
		}
		seen[class] = struct{}{}
		out = append(out, class)
	}
	return out
}
