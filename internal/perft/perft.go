// Package perft counts the leaf nodes of the legal-move tree to a fixed
// depth. The counts of well-known positions are published, which makes
// perft the standard check of a move generator.
package perft

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/hashing"
	"github.com/lgbarn/chess-core-go/internal/worker"
)

// minCachedDepth is the smallest sub-tree worth a cache entry.
const minCachedDepth = 2

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  chess.Move
	LAN   string
	Nodes uint64
}

// Result is the outcome of Divide: per-root-move counts in generation
// order and their total.
type Result struct {
	Depth int
	Moves []MoveCount
	Total uint64
}

// Count returns the number of leaf nodes depth plies below pos. It runs
// on the calling goroutine without a cache.
func Count(pos *chess.Position, depth int) uint64 {
	return count(pos, depth, nil)
}

func count(pos *chess.Position, depth int, cache *hashing.NodeCache) uint64 {
	if depth == 0 {
		return 1
	}
	moves := engine.GenerateMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	if cache != nil && depth >= minCachedDepth {
		if n, ok := cache.Lookup(pos, depth); ok {
			return n
		}
	}

	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		if err := engine.ApplyMove(child, m); err != nil {
			// Generated moves always fit their position.
			panic(fmt.Sprintf("perft: apply %s: %v", engine.LAN(m), err))
		}
		nodes += count(child, depth-1, cache)
	}

	if cache != nil && depth >= minCachedDepth {
		cache.Store(pos, depth, nodes)
	}
	return nodes
}

// Runner splits perft over a worker pool, one work item per root move.
type Runner struct {
	cfg    *config.PerftConfig
	cache  *hashing.NodeCache
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil cfg uses the defaults and a nil
// logger discards output.
func NewRunner(cfg *config.PerftConfig, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.NewPerftConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		cache:  hashing.NewNodeCache(cfg.CacheSize),
		logger: logger,
	}
}

func (r *Runner) numWorkers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.NumCPU()
}

// process counts the sub-tree below one root move.
func (r *Runner) process(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Move: item.Move}
	if err := engine.ApplyMove(item.Position, item.Move); err != nil {
		result.Error = err
		return result
	}
	result.Nodes = count(item.Position, item.Depth, r.cache)
	return result
}

// Divide counts the nodes below each legal root move of pos. pos is not
// modified. It returns ctx.Err() only when cancellation left root moves
// uncounted.
func (r *Runner) Divide(ctx context.Context, pos *chess.Position, depth int) (*Result, error) {
	if depth < 0 {
		return nil, errors.Wrapf(errors.ErrOutOfRange, "perft depth %d", depth)
	}
	result := &Result{Depth: depth}
	if depth == 0 {
		result.Total = 1
		return result, nil
	}

	moves := engine.GenerateMoves(pos)
	result.Moves = make([]MoveCount, len(moves))

	pool := worker.NewPool(r.process,
		worker.WithWorkers(r.numWorkers()),
		worker.WithBufferSize(r.cfg.BufferSize),
	)
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			item := worker.WorkItem{Index: i, Position: pos.Copy(), Move: m, Depth: depth - 1}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	var errs error
	received := 0
	for res := range pool.Results() {
		received++
		if res.Error != nil {
			errs = multierr.Append(errs, errors.Wrapf(res.Error, "root move %s", engine.LAN(res.Move)))
			pool.Stop()
			continue
		}
		lan := engine.LAN(res.Move)
		result.Moves[res.Index] = MoveCount{Move: res.Move, LAN: lan, Nodes: res.Nodes}
		result.Total += res.Nodes
		r.logger.Debug("perft root move",
			zap.String("move", lan),
			zap.Uint64("nodes", res.Nodes),
		)
	}

	if err := ctx.Err(); err != nil && received < len(moves) {
		r.logger.Debug("perft cancelled",
			zap.Int("depth", depth),
			zap.Int64("completed", pool.Completed()),
			zap.Int("moves", len(moves)),
		)
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}

	r.logger.Info("perft complete",
		zap.Int("depth", depth),
		zap.Int("moves", len(moves)),
		zap.Uint64("nodes", result.Total),
		zap.Int("cached", r.cache.Len()),
	)
	return result, nil
}
