package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/engine"
)

func TestNodeCache_LookupStore(t *testing.T) {
	cache := NewNodeCache(0)
	pos := mustPosition(t, engine.InitialFEN)

	if _, ok := cache.Lookup(pos, 2); ok {
		t.Fatal("Lookup() on empty cache should miss")
	}

	cache.Store(pos, 2, 400)
	n, ok := cache.Lookup(pos, 2)
	if !ok || n != 400 {
		t.Errorf("Lookup(start, 2) = %d, %v; want 400, true", n, ok)
	}
	if _, ok := cache.Lookup(pos, 3); ok {
		t.Error("Lookup() at another depth should miss")
	}
}

func TestNodeCache_Capacity(t *testing.T) {
	cache := NewNodeCache(2)
	fens := []string{
		engine.InitialFEN,
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"4k3/8/8/8/8/8/8/4K2R b K - 0 1",
	}
	for i, fen := range fens {
		cache.Store(mustPosition(t, fen), 1, uint64(i))
	}

	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
	if !cache.IsFull() {
		t.Error("IsFull() should be true at capacity")
	}
	if _, ok := cache.Lookup(mustPosition(t, fens[2]), 1); ok {
		t.Error("entry stored past capacity should be dropped")
	}
	if NewNodeCache(0).IsFull() {
		t.Error("unlimited cache should never be full")
	}
}

func TestNodeCache_Concurrent(t *testing.T) {
	cache := NewNodeCache(0)
	pos := mustPosition(t, engine.InitialFEN)

	const numWorkers = 10
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(depth int) {
			defer wg.Done()
			local := pos.Copy()
			cache.Store(local, depth, uint64(depth))
			cache.Lookup(local, depth)
		}(i)
	}
	wg.Wait()

	if cache.Len() != numWorkers {
		t.Errorf("Len() = %d, want %d", cache.Len(), numWorkers)
	}
	for i := 0; i < numWorkers; i++ {
		if n, ok := cache.Lookup(pos, i); !ok || n != uint64(i) {
			t.Errorf("Lookup(start, %d) = %d, %v", i, n, ok)
		}
	}
}
