// SPDX-License-Identifier: MIT

package workpool

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Executor runs a batch of independent tasks and returns once all of them
// have completed. Implementations must be safe for concurrent Run calls.
type Executor interface {
	Run(tasks ...func()) error
}

// Compile-time assertions.
var (
	_ Executor = (*Pool)(nil)
	_ Executor = Spawn{}
)

// Pool runs task batches on a persistent go-highway worker pool. The zero
// value is not usable; construct with New.
type Pool struct {
	size   int
	wp     *workerpool.Pool
	mu     sync.RWMutex // guards closed; Run holds it shared while submitting
	closed bool
}

// New starts a pool of size worker goroutines.
// Implementation:
//   - Stage 1: validate size >= 1 (workerpool.New would silently turn a
//     non-positive size into GOMAXPROCS).
//   - Stage 2: start the persistent workers.
//
// Errors:
//   - ErrInvalidSize when size < 1.
func New(size int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrInvalidSize)
	}

	return &Pool{size: size, wp: workerpool.New(size)}, nil
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int { return p.size }

// Run hands the tasks to the workers in contiguous chunks and blocks until
// all of them have returned (fork-join). Tasks of one chunk run in order on
// one worker; chunks run concurrently.
//
// Errors:
//   - ErrPoolClosed when Close was called before Run; no task is run then.
//
// Notes:
//   - Close waits for every Run already in flight, so a submission never
//     races with the shutdown of the task channel.
func (p *Pool) Run(tasks ...func()) error {
	if len(tasks) == 0 {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("Run: %w", ErrPoolClosed)
	}

	// Join point: ParallelFor returns after every chunk has run.
	p.wp.ParallelFor(len(tasks), func(start, end int) {
		for _, task := range tasks[start:end] {
			task()
		}
	})

	return nil
}

// Close stops accepting work and shuts the workers down.
// Calling Close more than once is a no-op.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.wp.Close()

	return nil
}

// Spawn is an Executor that starts a fresh goroutine per task for the
// duration of one Run call.
type Spawn struct{}

// Run starts every task on its own goroutine and waits for all of them.
func (Spawn) Run(tasks ...func()) error {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task func()) {
			defer wg.Done()
			task()
		}(task)
	}
	wg.Wait()

	return nil
}
