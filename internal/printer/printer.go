package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// Printer renders optimized forests as CSS text.
type Printer struct {
	// Indent is written once per nesting level. Empty means two spaces.
	Indent string
}

// Render writes the CSS for class. Relative selectors resolve against the
// escaped class selector; absolute selectors are written as given.
func (p *Printer) Render(w io.Writer, class string, forest []style.Node) error {
	r := &renderer{w: w, indent: p.indent()}
	r.nodes(forest, "."+EscapeClass(class), 0)
	return r.err
}

// RenderAll renders several classes back to back.
func (p *Printer) RenderAll(w io.Writer, classes []string, forests [][]style.Node) error {
	if len(classes) != len(forests) {
		return fmt.Errorf("printer: %d classes for %d forests", len(classes), len(forests))
	}
	for i, class := range classes {
		if err := p.Render(w, class, forests[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) indent() string {
	if p == nil || p.Indent == "" {
		return "  "
	}
	return p.Indent
}

type renderer struct {
	w      io.Writer
	indent string
	err    error
}

func (r *renderer) printf(depth int, format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, strings.Repeat(r.indent, depth)+format, args...)
}

func (r *renderer) nodes(nodes []style.Node, selector string, depth int) {
	var pending []*style.Declaration
	flush := func() {
		if len(pending) == 0 {
			return
		}
		r.block(selector, pending, depth)
		pending = nil
	}

	for _, n := range nodes {
		switch n := n.(type) {
		case *style.Declaration:
			if n.Block != nil {
				flush()
				r.scoped(n, selector, depth)
				continue
			}
			pending = append(pending, n)
		case *style.Rule:
			flush()
			r.nodes(n.Children, Resolve(n.Selector, selector), depth)
		case *style.AbsoluteRule:
			flush()
			r.nodes(n.Children, n.Selector, depth)
		case *style.AtRule:
			flush()
			header := "@" + n.Name
			if n.Params != "" {
				header += " " + n.Params
			}
			if len(n.Children) == 0 {
				r.printf(depth, "%s;\n", header)
				continue
			}
			r.printf(depth, "%s {\n", header)
			r.nodes(n.Children, selector, depth+1)
			r.printf(depth, "}\n")
		case *style.Group:
			flush()
			r.nodes(n.Children, selector, depth)
		case *style.Comment:
			flush()
			r.printf(depth, "/* %s */\n", n.Text)
		case *style.Raw:
			flush()
			r.printf(depth, "%s\n", n.Text)
		}
	}
	flush()
}

func (r *renderer) block(selector string, decls []*style.Declaration, depth int) {
	r.printf(depth, "%s {\n", selector)
	for _, d := range decls {
		r.printf(depth+1, "%s: %s%s;\n", d.Property, d.Value, important(d.Important))
	}
	r.printf(depth, "}\n")
}

// scoped renders a declaration group; Property holds its selector.
func (r *renderer) scoped(d *style.Declaration, selector string, depth int) {
	if len(d.Block) == 0 {
		return
	}
	r.printf(depth, "%s {\n", Resolve(d.Property, selector))
	for _, kv := range d.Block {
		r.printf(depth+1, "%s: %s%s;\n", kv.Name, kv.Value, important(d.Important))
	}
	r.printf(depth, "}\n")
}

func important(on bool) string {
	if on {
		return " !important"
	}
	return ""
}

// Resolve substitutes parent for every "&" in selector. A selector without
// a placeholder is a descendant of parent.
func Resolve(selector, parent string) string {
	if selector == "" {
		return parent
	}
	if resolved, ok := style.ReplacePlaceholder(selector, parent); ok {
		return resolved
	}
	if parent == "" {
		return selector
	}
	return parent + " " + selector
}

// EscapeClass escapes a class name for use in a class selector.
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 8)
	for i, c := range class {
		switch {
		case i == 0 && c >= '0' && c <= '9':
			fmt.Fprintf(&b, "\\3%c ", c)
		case c == '-' && i == 0 && len(class) == 1:
			b.WriteString("\\-")
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c >= 0x80:
			b.WriteRune(c)
		default:
			b.WriteByte('\\')
			b.WriteRune(c)
		}
	}
	return b.String()
}
