// Package worker provides a worker pool for scoring root moves in parallel.
package worker

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// WorkItem is a root move waiting to be scored.
type WorkItem struct {
	Move  chess.Move
	Index int // position in the root move list
}

// ProcessResult is the score of one root move.
type ProcessResult struct {
	Move     chess.Move
	Index    int
	Score    int
	Position *chess.Position // position after the move, may be nil
}

// ProcessFunc scores a work item. It must be safe to call concurrently.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of goroutines over a shared work channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
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

// WithBufferSize sets the capacity of the work and result channels. Values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 32 unless opts say
// otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  32,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for item := range p.workChan {
				p.resultChan <- p.processFunc(item)
			}
		}()
	}
}

// Submit queues a move, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// ScoreMoves scores every move on a fresh pool and returns the results in
// the order of moves, whatever order the workers finished in.
func ScoreMoves(moves []chess.Move, processFunc ProcessFunc, opts ...PoolOption) []ProcessResult {
	results := make([]ProcessResult, len(moves))
	if len(moves) == 0 {
		return results
	}

	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Move: m, Index: i})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
