// Package worker fans perft sub-tree counts out to a fixed set of
// goroutines.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// WorkItem is one root move whose sub-tree is to be counted.
type WorkItem struct {
	Index    int             // position of Move among the root moves
	Position *chess.Position // before Move; the worker owns it
	Move     chess.Move
	Depth    int // plies below Move
}

// ProcessResult is the node count of one sub-tree.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Error error
}

// ProcessFunc counts the nodes of one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on numWorkers goroutines.
// Results arrive in completion order; use Index to restore move order.
type Pool struct {
	numWorkers int
	bufferSize int
	items      chan WorkItem
	results    chan ProcessResult
	process    ProcessFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool
	completed  atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless
// options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.IsStopped() {
			continue
		}
		p.results <- p.safeProcess(item)
		p.completed.Add(1)
	}
}

// safeProcess runs the ProcessFunc, turning a panic into the item's result
// error.
func (p *Pool) safeProcess(item WorkItem) (res ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ProcessResult{Index: item.Index, Move: item.Move, Error: panicError(r)}
		}
	}()
	return p.process(item)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("worker panic: %w", err)
	}
	return fmt.Errorf("worker panic: %v", r)
}

// Submit queues an item, blocking while the buffer is full. It returns
// ctx.Err() if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues an item without blocking. It reports false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on. It is closed by
// Close once every worker has exited.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Completed returns how many items have been processed.
func (p *Pool) Completed() int64 {
	return p.completed.Load()
}
