package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourcePriorityTable(t *testing.T) {
	t.Parallel()

	cases := map[SourceTag]int{
		SourceMedia:      0,
		SourceSupports:   1,
		SourceContainer:  2,
		SourceResponsive: 10,
		SourceGroup:      20,
		SourcePeer:       30,
		SourceDark:       40,
		SourceUniversal:  50,
		SourceData:       60,
		SourceAria:       70,
		SourceAttribute:  80,
		SourcePseudo:     90,
		SourceBase:       100,
		SourceStarting:   110,
		"":               100,
		"unheard-of":     100,
	}
	for tag, want := range cases {
		require.Equal(t, want, tag.Priority(), "tag %q", tag)
	}
}

func TestStripDropsChildren(t *testing.T) {
	t.Parallel()

	rule := NewRule("&:hover", SourcePseudo, Decl("color", "red"))
	frame := Strip(rule)

	require.Equal(t, &Rule{Selector: "&:hover", Source: SourcePseudo}, frame)
	require.Len(t, rule.Children, 1, "original must stay intact")
}

func TestSameFrameIgnoresSource(t *testing.T) {
	t.Parallel()

	require.True(t, SameFrame(&Rule{Selector: "&:hover", Source: SourcePseudo}, &Rule{Selector: "&:hover"}))
	require.True(t, SameFrame(&AtRule{Name: "media", Params: "(x)"}, &AtRule{Name: "media", Params: "(x)", Source: SourceMedia}))
	require.False(t, SameFrame(&AtRule{Name: "media", Params: "(x)"}, &AtRule{Name: "supports", Params: "(x)"}))
	require.False(t, SameFrame(&Rule{Selector: "a"}, &AbsoluteRule{Selector: "a"}))
	require.False(t, SameFrame(Decl("a", "b"), Decl("a", "b")))
}

func TestFlattenRemovesGroups(t *testing.T) {
	t.Parallel()

	tree := []Node{
		&Group{Children: []Node{
			Decl("a", "1"),
			NewRule("&:hover", SourcePseudo, &Group{Children: []Node{Decl("b", "2")}}),
		}},
	}

	got := Flatten(tree)
	require.Equal(t, []Node{
		Decl("a", "1"),
		NewRule("&:hover", SourcePseudo, Decl("b", "2")),
	}, got)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	decl := &Declaration{Property: "&::placeholder", Block: []Property{{Name: "color", Value: "red"}}}
	orig := NewAtRule("media", "(x)", SourceMedia, decl)
	cp := Clone(orig).(*AtRule)

	cp.Children[0].(*Declaration).Block[0].Value = "blue"
	require.Equal(t, "red", decl.Block[0].Value)
}

func TestDeclPathAccessors(t *testing.T) {
	t.Parallel()

	p := DeclPath{&AtRule{Name: "media", Params: "(x)"}, Decl("color", "red")}
	d, ok := p.Declaration()
	require.True(t, ok)
	require.Equal(t, "color", d.Property)
	require.Len(t, p.Frames(), 1)

	require.Nil(t, DeclPath{}.Terminal())
}
