package catalog

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/japaniel/glazekb/pkg/dataset"
)

// LoadFunc decodes one dataset. The pool calls it exactly once for every
// submitted kind, including after ctx is done, so it must check ctx itself
// and return a result either way.
type LoadFunc func(ctx context.Context, kind dataset.Kind) DatasetResult

// LoadPool decodes datasets on a fixed number of goroutines and collects one
// DatasetResult per kind.
type LoadPool struct {
	load    LoadFunc
	workers int
	queue   chan dataset.Kind
	wg      sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	submitted map[dataset.Kind]bool
	results   map[dataset.Kind]DatasetResult
}

// NewLoadPool creates a pool running load on at most workers goroutines.
func NewLoadPool(workers int, load LoadFunc) *LoadPool {
	if workers <= 0 {
		workers = 1
	}
	n := len(dataset.Kinds())
	return &LoadPool{
		load:    load,
		workers: workers,
		// Each kind is queued at most once, so Submit never blocks.
		queue:     make(chan dataset.Kind, n),
		submitted: make(map[dataset.Kind]bool, n),
		results:   make(map[dataset.Kind]DatasetResult, n),
	}
}

// Start launches the workers. They run until Wait closes the queue; ctx is
// handed to every LoadFunc call. Start must be called before Wait.
func (p *LoadPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for kind := range p.queue {
				res := p.load(ctx, kind)
				p.mu.Lock()
				p.results[kind] = res
				p.mu.Unlock()
			}
		}()
	}
}

// Submit queues kind for loading. A kind may be submitted once per pool.
func (p *LoadPool) Submit(kind dataset.Kind) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	if p.submitted[kind] {
		return fmt.Errorf("dataset %s already queued", kind)
	}
	if len(p.submitted) == cap(p.queue) {
		return fmt.Errorf("load queue full, cannot queue %s", kind)
	}
	p.submitted[kind] = true
	p.queue <- kind
	return nil
}

// Wait stops accepting kinds, waits for every queued kind to finish and
// returns the results. Calling it again returns the same results.
func (p *LoadPool) Wait() map[dataset.Kind]DatasetResult {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.results)
}

// ErrPoolClosed is returned by Submit after Wait.
var ErrPoolClosed = errors.New("load pool closed")
