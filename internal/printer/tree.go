package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

// TreeStyle defines how each part of a tree dump is drawn.
type TreeStyle struct {
	// BranchStyle applies to the connector glyphs
	BranchStyle lipgloss.Style
	// AtRuleStyle applies to at-rule headers
	AtRuleStyle lipgloss.Style
	// RuleStyle applies to rule selectors
	RuleStyle lipgloss.Style
	// PropertyStyle applies to declaration properties
	PropertyStyle lipgloss.Style
	// ValueStyle applies to declaration values
	ValueStyle lipgloss.Style
	// SourceStyle applies to source tag annotations
	SourceStyle lipgloss.Style

	plain bool
}

// DefaultTreeStyle returns the colored style used on terminals.
func DefaultTreeStyle() TreeStyle {
	return TreeStyle{
		BranchStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
		AtRuleStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a855f7")).Bold(true),
		RuleStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
		PropertyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#06b6d4")),
		ValueStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		SourceStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true),
	}
}

// PlainTreeStyle returns a style that writes text unchanged.
func PlainTreeStyle() TreeStyle {
	return TreeStyle{plain: true}
}

func (ts TreeStyle) render(s lipgloss.Style, text string) string {
	if ts.plain {
		return text
	}
	return s.Render(text)
}

// Tree writes an indented dump of forest, one node per line.
func Tree(w io.Writer, forest []style.Node, ts TreeStyle) error {
	var b strings.Builder
	writeTree(&b, forest, "", ts)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTree(b *strings.Builder, nodes []style.Node, prefix string, ts TreeStyle) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, next := "├── ", "│   "
		if last {
			connector, next = "└── ", "    "
		}
		b.WriteString(ts.render(ts.BranchStyle, prefix+connector))
		b.WriteString(label(n, ts))
		b.WriteByte('\n')
		writeTree(b, style.Children(n), prefix+next, ts)
	}
}

func label(n style.Node, ts TreeStyle) string {
	var text string
	switch n := n.(type) {
	case *style.Declaration:
		text = ts.render(ts.PropertyStyle, n.Property) + ": " + ts.render(ts.ValueStyle, n.Value+important(n.Important))
		for _, kv := range n.Block {
			text += fmt.Sprintf(" %s=%s", ts.render(ts.PropertyStyle, kv.Name), ts.render(ts.ValueStyle, kv.Value))
		}
	case *style.Rule:
		text = ts.render(ts.RuleStyle, n.Selector)
	case *style.AbsoluteRule:
		text = ts.render(ts.RuleStyle, n.Selector) + " " + ts.render(ts.SourceStyle, "(absolute)")
	case *style.AtRule:
		text = ts.render(ts.AtRuleStyle, strings.TrimSpace("@"+n.Name+" "+n.Params))
	case *style.Group:
		text = ts.render(ts.SourceStyle, "(group)")
	case *style.Comment:
		text = ts.render(ts.SourceStyle, "/* "+n.Text+" */")
	case *style.Raw:
		text = n.Text
	}
	if tag := style.SourceOf(n); tag != "" {
		text += " " + ts.render(ts.SourceStyle, "["+string(tag)+"]")
	}
	return text
}
