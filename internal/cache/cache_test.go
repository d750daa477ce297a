package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

func TestCacheRoundTripCopies(t *testing.T) {
	t.Parallel()

	c := New(0, time.Minute)
	nodes := []style.Node{style.NewRule("&:hover", style.SourcePseudo, style.Decl("color", "red"))}
	c.Set("hover:text-red", Entry{Nodes: nodes, Priority: 3})

	nodes[0].(*style.Rule).Selector = "mutated"

	got, ok := c.Get("hover:text-red")
	require.True(t, ok)
	require.Equal(t, 3, got.Priority)
	require.Equal(t, "&:hover", got.Nodes[0].(*style.Rule).Selector)

	got.Nodes[0].(*style.Rule).Children = nil
	again, ok := c.Get("hover:text-red")
	require.True(t, ok)
	require.Len(t, style.Children(again.Nodes[0]), 1)
	require.Equal(t, 1, c.Len())
}

func TestCacheMissAndFlush(t *testing.T) {
	t.Parallel()

	c := New(time.Minute, time.Minute)
	_, ok := c.Get("p-4")
	require.False(t, ok)

	c.Set("unknown", Entry{})
	got, ok := c.Get("unknown")
	require.True(t, ok)
	require.Nil(t, got.Nodes)

	c.Flush()
	require.Zero(t, c.Len())
}

func TestNilCacheIsInert(t *testing.T) {
	t.Parallel()

	var c *Cache
	c.Set("p-4", Entry{Nodes: []style.Node{style.Decl("padding", "1rem")}})
	_, ok := c.Get("p-4")
	require.False(t, ok)
	require.Zero(t, c.Len())
}
