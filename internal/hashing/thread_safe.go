package hashing

import (
	"sync"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// nodeKey identifies a perft sub-tree: a position searched to a depth.
type nodeKey struct {
	hash  uint64
	depth int
}

// NodeCache memoises perft node counts per (position, depth). It is safe
// for concurrent use by the perft workers.
type NodeCache struct {
	entries     map[nodeKey]uint64
	maxCapacity int
	mu          sync.RWMutex
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count of pos at depth.
func (c *NodeCache) Lookup(pos *chess.Position, depth int) (uint64, bool) {
	key := nodeKey{hash: GenerateZobristHash(pos), depth: depth}
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.entries[key]
	return n, ok
}

// Store records the node count of pos at depth. It is dropped when the
// cache is full.
func (c *NodeCache) Store(pos *chess.Position, depth int, nodes uint64) {
	key := nodeKey{hash: GenerateZobristHash(pos), depth: depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[key] = nodes
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
