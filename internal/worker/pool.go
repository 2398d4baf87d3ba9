// Package worker provides a worker pool for analysing positions in parallel.
// Every work item carries its own board; workers never share mutable state.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem represents a position to be analysed.
type WorkItem struct {
	Board  *chess.Board // Owned by the item; nothing else may touch it
	ToMove chess.Colour
	Move   chess.Move // Move that produced Board, for reporting
	Depth  int
	Index  int // Original index for tracking
}

// ProcessResult represents the result of analysing a position.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// ProcessFunc analyses one item. Long-running functions should return
// early once ctx is done.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a fixed number of goroutines over a channel of work items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	// ctx is cancelled by Stop; items taken after that are skipped.
	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers goroutines and channels holding
// bufferSize items. Values below 1 fall back to the defaults.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(p.ctx, item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop cancels the context handed to running items. Items still queued are
// drained without producing results.
func (p *Pool) Stop() {
	p.cancel()
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.ctx.Err() != nil
}

// Close closes the work channel, waits for the workers and then closes the
// result channel. The pool counts as stopped afterwards.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	p.cancel()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
