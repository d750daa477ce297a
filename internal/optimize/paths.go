package optimize

import (
	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// CollectDeclPaths walks trees depth first and returns one path per
// declaration leaf. Branches without children contribute nothing, groups are
// transparent and comment or raw leaves are dropped.
func CollectDeclPaths(trees []style.Node) []style.DeclPath {
	var paths []style.DeclPath
	for _, tree := range trees {
		paths = collect(tree, nil, paths)
	}
	return paths
}

func collect(n style.Node, frames []style.Node, out []style.DeclPath) []style.DeclPath {
	switch n := n.(type) {
	case *style.Declaration:
		path := make(style.DeclPath, 0, len(frames)+1)
		for _, f := range frames {
			path = append(path, style.Clone(f))
		}
		return append(out, append(path, style.Clone(n)))
	case *style.Group:
		for _, child := range n.Children {
			out = collect(child, frames, out)
		}
		return out
	}

	if !style.IsBranch(n) {
		return out
	}
	next := make([]style.Node, len(frames), len(frames)+1)
	copy(next, frames)
	next = append(next, style.Strip(n))
	for _, child := range style.Children(n) {
		out = collect(child, next, out)
	}
	return out
}

// hoist collapses runs of adjacent identical frames into their first member.
func hoist(frames []style.Node) []style.Node {
	out := make([]style.Node, 0, len(frames))
	for _, f := range frames {
		if _, ok := f.(*style.Group); ok {
			continue
		}
		if len(out) > 0 && style.SameFrame(out[len(out)-1], f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
