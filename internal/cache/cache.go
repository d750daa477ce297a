package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alexisbeaulieu97/utilicss/internal/style"
)

const (
	DefaultExpiration = 10 * time.Minute
	DefaultCleanup    = 20 * time.Minute
)

// Entry is one compiled class: its nodes and the priority of the utility
// that produced them.
type Entry struct {
	Nodes    []style.Node
	Priority int
}

// Cache memoizes compiled classes by key. Callers sharing a cache across
// contexts must fold the context into the key. Nodes are stored and returned
// as deep copies so callers may mutate what they get back.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache. A zero expiration keeps entries until Flush.
func New(expiration, cleanup time.Duration) *Cache {
	if expiration == 0 {
		expiration = gocache.NoExpiration
	}
	return &Cache{store: gocache.New(expiration, cleanup)}
}

// Get returns the cached entry for class.
func (c *Cache) Get(class string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	v, found := c.store.Get(class)
	if !found {
		return Entry{}, false
	}
	entry, ok := v.(Entry)
	if !ok {
		return Entry{}, false
	}
	entry.Nodes = style.CloneAll(entry.Nodes)
	return entry, true
}

// Set stores the entry for class.
func (c *Cache) Set(class string, entry Entry) {
	if c == nil {
		return
	}
	entry.Nodes = style.CloneAll(entry.Nodes)
	c.store.SetDefault(class, entry)
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.store.ItemCount()
}

// Flush drops every entry.
func (c *Cache) Flush() {
	if c == nil {
		return
	}
	c.store.Flush()
}
