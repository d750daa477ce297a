package style

// Kind identifies the variant of a Node.
type Kind int

const (
	KindDeclaration Kind = iota
	KindRule
	KindAbsoluteRule
	KindAtRule
	KindGroup
	KindComment
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindDeclaration:
		return "declaration"
	case KindRule:
		return "rule"
	case KindAbsoluteRule:
		return "absolute-rule"
	case KindAtRule:
		return "at-rule"
	case KindGroup:
		return "group"
	case KindComment:
		return "comment"
	case KindRaw:
		return "raw"
	}
	return "unknown"
}

// Node is a node in a style tree. The set of implementations is closed.
type Node interface {
	Kind() Kind
	node()
}

func (*Declaration) node()  {}
func (*Rule) node()         {}
func (*AbsoluteRule) node() {}
func (*AtRule) node()       {}
func (*Group) node()        {}
func (*Comment) node()      {}
func (*Raw) node()          {}

func (*Declaration) Kind() Kind  { return KindDeclaration }
func (*Rule) Kind() Kind         { return KindRule }
func (*AbsoluteRule) Kind() Kind { return KindAbsoluteRule }
func (*AtRule) Kind() Kind       { return KindAtRule }
func (*Group) Kind() Kind        { return KindGroup }
func (*Comment) Kind() Kind      { return KindComment }
func (*Raw) Kind() Kind          { return KindRaw }

// Property is a single key/value pair inside a declaration block.
type Property struct {
	Name  string
	Value string
}

// Declaration is a leaf carrying either a literal value or, when Block is
// non-nil, an ordered group of pairs scoped under Property.
type Declaration struct {
	Property  string
	Value     string
	Block     []Property
	Important bool
	Source    SourceTag
}

// Rule is a selector relative to its parent; "&" stands for the parent selector.
type Rule struct {
	Selector string
	Source   SourceTag
	Children []Node
}

// AbsoluteRule is a literal selector with no placeholder semantics.
type AbsoluteRule struct {
	Selector string
	Source   SourceTag
	Children []Node
}

// AtRule is an at-rule such as media, supports or container.
type AtRule struct {
	Name     string
	Params   string
	Source   SourceTag
	Children []Node
}

// Group is a transparent wrapper used while wrapping. It never reaches output.
type Group struct {
	Children []Node
}

// Comment is a pass-through comment leaf.
type Comment struct {
	Text string
}

// Raw is pass-through literal text.
type Raw struct {
	Text string
}

// Decl returns a declaration node.
func Decl(property, value string) *Declaration {
	return &Declaration{Property: property, Value: value}
}

// NewRule returns a relative rule wrapping children.
func NewRule(selector string, source SourceTag, children ...Node) *Rule {
	return &Rule{Selector: selector, Source: source, Children: children}
}

// NewAtRule returns an at-rule wrapping children.
func NewAtRule(name, params string, source SourceTag, children ...Node) *AtRule {
	return &AtRule{Name: name, Params: params, Source: source, Children: children}
}

// Children returns the children of a branch node, or nil for leaves.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Rule:
		return n.Children
	case *AbsoluteRule:
		return n.Children
	case *AtRule:
		return n.Children
	case *Group:
		return n.Children
	}
	return nil
}

// IsBranch reports whether n can hold children.
func IsBranch(n Node) bool {
	switch n.(type) {
	case *Rule, *AbsoluteRule, *AtRule, *Group:
		return true
	}
	return false
}

// WithChildren returns a shallow copy of n carrying children. Leaves are
// returned unchanged.
func WithChildren(n Node, children []Node) Node {
	switch n := n.(type) {
	case *Rule:
		c := *n
		c.Children = children
		return &c
	case *AbsoluteRule:
		c := *n
		c.Children = children
		return &c
	case *AtRule:
		c := *n
		c.Children = children
		return &c
	case *Group:
		return &Group{Children: children}
	}
	return n
}

// Strip returns the frame form of n: a copy without children.
func Strip(n Node) Node {
	if IsBranch(n) {
		return WithChildren(n, nil)
	}
	return Clone(n)
}

// Clone deep-copies a node.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Declaration:
		c := *n
		if n.Block != nil {
			c.Block = append([]Property(nil), n.Block...)
		}
		return &c
	case *Comment:
		c := *n
		return &c
	case *Raw:
		c := *n
		return &c
	case nil:
		return nil
	}
	return WithChildren(n, CloneAll(Children(n)))
}

// CloneAll deep-copies a node list.
func CloneAll(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(n)
	}
	return out
}

// SourceOf returns the source tag carried by n, if any.
func SourceOf(n Node) SourceTag {
	switch n := n.(type) {
	case *Declaration:
		return n.Source
	case *Rule:
		return n.Source
	case *AbsoluteRule:
		return n.Source
	case *AtRule:
		return n.Source
	}
	return ""
}

// SameFrame reports whether a and b have the same kind and identity: at-rule
// name and params, or rule selector. Source tags are ignored.
func SameFrame(a, b Node) bool {
	switch a := a.(type) {
	case *Rule:
		o, ok := b.(*Rule)
		return ok && a.Selector == o.Selector
	case *AbsoluteRule:
		o, ok := b.(*AbsoluteRule)
		return ok && a.Selector == o.Selector
	case *AtRule:
		o, ok := b.(*AtRule)
		return ok && a.Name == o.Name && a.Params == o.Params
	}
	return false
}

// Flatten splices the children of every Group into its parent list.
func Flatten(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if g, ok := n.(*Group); ok {
			out = append(out, Flatten(g.Children)...)
			continue
		}
		if IsBranch(n) {
			out = append(out, WithChildren(n, Flatten(Children(n))))
			continue
		}
		out = append(out, n)
	}
	return out
}
