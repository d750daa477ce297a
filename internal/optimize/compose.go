package optimize

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

const placeholder = style.Placeholder

// DeclPathToAST canonicalizes one declaration path into a single-root tree:
// structural frames (at-rules and absolute rules) keep their relative order
// and wrap one relative rule whose selector composes every rule frame. Rule
// and structural frames are split before hoisting, so duplicates separated
// only by frames of the other kind still collapse.
//
// A path without frames yields Rule("&") around the declaration. A path
// ending in anything but a declaration returns that terminal unmodified.
func DeclPathToAST(path style.DeclPath) style.Node {
	decl, ok := path.Declaration()
	if !ok {
		return path.Terminal()
	}

	var ruleFrames, structural []style.Node
	for _, f := range path.Frames() {
		switch f.(type) {
		case *style.Rule:
			ruleFrames = append(ruleFrames, f)
		case *style.Group:
		default:
			structural = append(structural, f)
		}
	}
	structural = hoist(structural)

	var rules []*style.Rule
	for _, f := range hoist(ruleFrames) {
		rules = append(rules, f.(*style.Rule))
	}

	var root style.Node = style.NewRule(ComposeSelector(rules), "", style.Clone(decl))
	for i := len(structural) - 1; i >= 0; i-- {
		root = style.WithChildren(structural[i], []style.Node{root})
	}
	return root
}

// ComposeSelector folds rule frames, given outermost first, into a single
// relative selector. Frames are ordered by source priority, then composed per
// source group: pseudo groups fold left to right, every other group folds
// right to left. Group results combine from the lowest rank inward.
func ComposeSelector(rules []*style.Rule) string {
	if len(rules) == 0 {
		return placeholder
	}

	sorted := make([]*style.Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source.Priority() < sorted[j].Source.Priority()
	})

	acc := ""
	for start := 0; start < len(sorted); {
		tag := sorted[start].Source.Normalize()
		end := start + 1
		for end < len(sorted) && sorted[end].Source.Normalize() == tag {
			end++
		}

		fragments := make([]string, 0, end-start)
		for _, r := range sorted[start:end] {
			fragments = append(fragments, fragment(r.Selector))
		}

		var composed string
		if tag == style.SourcePseudo {
			composed = foldLeft(fragments)
		} else {
			composed = foldRight(fragments)
		}

		if acc == "" {
			acc = composed
		} else if spliced, ok := style.ReplacePlaceholder(composed, acc); ok {
			acc = spliced
		} else {
			acc = acc + " " + composed
		}
		start = end
	}
	return acc
}

// foldLeft nests each fragment inside the ones before it.
func foldLeft(fragments []string) string {
	acc := fragments[0]
	for _, f := range fragments[1:] {
		if spliced, ok := style.ReplacePlaceholder(f, acc); ok {
			acc = spliced
			continue
		}
		acc = acc + " " + f
	}
	return acc
}

// foldRight places each fragment around the ones after it.
func foldRight(fragments []string) string {
	acc := fragments[len(fragments)-1]
	for i := len(fragments) - 2; i >= 0; i-- {
		f := fragments[i]
		if spliced, ok := style.ReplacePlaceholder(f, acc); ok {
			acc = spliced
			continue
		}
		acc = f + " " + acc
	}
	return acc
}

// fragment reads a bare pseudo selector such as ":hover" as "&:hover".
func fragment(sel string) string {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return placeholder
	}
	if !style.HasPlaceholder(sel) && strings.HasPrefix(sel, ":") {
		return placeholder + sel
	}
	return sel
}
