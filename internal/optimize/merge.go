package optimize

import (
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// trie accumulates paths while merging. Each level keeps its entries in
// first-arrival order.
type trie struct {
	entries []*entry
}

type entry struct {
	frame style.Node // nil for a leaf
	leaf  style.Node
	sub   *trie
}

func (t *trie) insert(path style.DeclPath) {
	level := t
	for _, f := range path.Frames() {
		level = level.branch(f)
	}
	level.entries = append(level.entries, &entry{leaf: style.Clone(path.Terminal())})
}

func (t *trie) branch(frame style.Node) *trie {
	for _, e := range t.entries {
		if e.frame != nil && style.SameFrame(e.frame, frame) {
			return e.sub
		}
	}
	e := &entry{frame: style.Strip(frame), sub: &trie{}}
	t.entries = append(t.entries, e)
	return e.sub
}

func (t *trie) build() []style.Node {
	if len(t.entries) == 0 {
		return nil
	}
	out := make([]style.Node, 0, len(t.entries))
	for _, e := range t.entries {
		if e.frame == nil {
			out = append(out, e.leaf)
			continue
		}
		out = append(out, style.WithChildren(e.frame, e.sub.build()))
	}
	return out
}

// MergeASTTreeList merges trees into a forest in which sibling branches of
// the same kind and identity are combined. Declarations are appended in
// arrival order and never deduplicated.
func MergeASTTreeList(trees []style.Node) []style.Node {
	root := &trie{}
	for _, path := range CollectDeclPaths(trees) {
		root.insert(path)
	}
	return root.build()
}

// OptimizeAST canonicalizes every declaration path of trees and merges the
// results.
func OptimizeAST(trees []style.Node) []style.Node {
	paths := CollectDeclPaths(trees)
	canonical := make([]style.Node, 0, len(paths))
	for _, path := range paths {
		if n := DeclPathToAST(path); n != nil {
			canonical = append(canonical, n)
		}
	}
	return MergeASTTreeList(canonical)
}

// NormalizeWrappers collapses every node nested directly and solely inside
// a node of the same kind and identity, splicing the inner children up.
func NormalizeWrappers(trees []style.Node) []style.Node {
	if trees == nil {
		return nil
	}
	out := make([]style.Node, 0, len(trees))
	for _, n := range trees {
		out = append(out, normalize(n))
	}
	return out
}

func normalize(n style.Node) style.Node {
	if !style.IsBranch(n) {
		return style.Clone(n)
	}
	children := NormalizeWrappers(style.Children(n))
	for len(children) == 1 && style.SameFrame(n, children[0]) {
		children = style.Children(children[0])
	}
	return style.WithChildren(n, children)
}
