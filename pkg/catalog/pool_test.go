package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/japaniel/glazekb/pkg/dataset"
)

func TestLoadPoolCollectsResults(t *testing.T) {
	var calls int32
	p := NewLoadPool(3, func(ctx context.Context, kind dataset.Kind) DatasetResult {
		atomic.AddInt32(&calls, 1)
		return DatasetResult{Count: len(kind)}
	})
	p.Start(context.Background())
	for _, kind := range dataset.Kinds() {
		if err := p.Submit(kind); err != nil {
			t.Fatalf("submit %s: %v", kind, err)
		}
	}
	results := p.Wait()

	if got := atomic.LoadInt32(&calls); int(got) != len(dataset.Kinds()) {
		t.Fatalf("expected %d loads, got %d", len(dataset.Kinds()), got)
	}
	for _, kind := range dataset.Kinds() {
		res, ok := results[kind]
		if !ok {
			t.Errorf("%s: no result", kind)
			continue
		}
		if res.Count != len(kind) || res.Err != nil {
			t.Errorf("%s: unexpected result %+v", kind, res)
		}
	}
}

func TestLoadPoolRunsEveryKindAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewLoadPool(2, func(ctx context.Context, kind dataset.Kind) DatasetResult {
		return DatasetResult{Err: ctx.Err()}
	})
	p.Start(ctx)
	for _, kind := range dataset.Kinds() {
		if err := p.Submit(kind); err != nil {
			t.Fatalf("submit %s: %v", kind, err)
		}
	}

	done := make(chan map[dataset.Kind]DatasetResult, 1)
	go func() { done <- p.Wait() }()
	select {
	case results := <-done:
		if len(results) != len(dataset.Kinds()) {
			t.Fatalf("expected a result per kind, got %d", len(results))
		}
		for kind, res := range results {
			if !errors.Is(res.Err, context.Canceled) {
				t.Errorf("%s: expected context.Canceled, got %v", kind, res.Err)
			}
		}
	case <-time.After(time.Second):
		t.Fatal("Wait blocked after context cancellation")
	}
}

func TestLoadPoolBoundsConcurrency(t *testing.T) {
	var running, peak int32
	p := NewLoadPool(2, func(ctx context.Context, kind dataset.Kind) DatasetResult {
		n := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return DatasetResult{}
	})
	p.Start(context.Background())
	for _, kind := range dataset.Kinds() {
		if err := p.Submit(kind); err != nil {
			t.Fatalf("submit %s: %v", kind, err)
		}
	}
	p.Wait()
	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Fatalf("expected at most 2 concurrent loads, saw %d", got)
	}
}

func TestLoadPoolSubmitErrors(t *testing.T) {
	p := NewLoadPool(0, func(ctx context.Context, kind dataset.Kind) DatasetResult {
		return DatasetResult{}
	})
	p.Start(context.Background())
	if err := p.Submit(dataset.Materials); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := p.Submit(dataset.Materials); err == nil {
		t.Fatal("expected duplicate kind to be rejected")
	}
	first := p.Wait()
	if err := p.Submit(dataset.Recipes); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
	if len(first) != 1 || len(p.Wait()) != 1 {
		t.Fatalf("expected the single materials result from both Wait calls")
	}
}
