package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/japaniel/glazekb/pkg/dataset"
)

// DatasetResult is the outcome of loading one dataset. Err is nil on success;
// on failure Count is 0 and the collection has been emptied, unless Err is a
// context error, in which case the collection was left untouched.
type DatasetResult struct {
	Count int
	Err   error
}

// LoadReport summarises one LoadAll run.
type LoadReport struct {
	RunID    uuid.UUID
	Started  time.Time
	Finished time.Time
	Results  map[dataset.Kind]DatasetResult
}

// Failed lists the kinds whose load did not succeed, in dataset order.
func (r LoadReport) Failed() []dataset.Kind {
	var out []dataset.Kind
	for _, k := range dataset.Kinds() {
		if res, ok := r.Results[k]; ok && res.Err != nil {
			out = append(out, k)
		}
	}
	return out
}

// Total is the number of records loaded across all kinds.
func (r LoadReport) Total() int {
	n := 0
	for _, res := range r.Results {
		n += res.Count
	}
	return n
}

// LoadAll decodes every dataset and replaces each collection as soon as its
// own decode finishes. A dataset that is missing or malformed becomes an empty
// collection and is logged; the others are unaffected. Per-dataset failures
// are reported in the LoadReport, never as the returned error.
//
// Only one load may run at a time: a concurrent call returns
// ErrLoadInProgress without touching any collection. If ctx is cancelled,
// datasets not yet started keep their previous contents.
func (c *Catalog) LoadAll(ctx context.Context) (LoadReport, error) {
	if !c.loading.CompareAndSwap(false, true) {
		return LoadReport{}, ErrLoadInProgress
	}
	defer c.loading.Store(false)

	report := LoadReport{
		RunID:   uuid.New(),
		Started: time.Now(),
	}
	log := c.log().With("run", report.RunID.String())
	bundle := c.Bundle
	if bundle == nil {
		bundle = dataset.Bundled()
	}
	if c.Observer != nil {
		c.Observer.LoadStarted()
	}

	pool := NewLoadPool(c.Workers, func(ctx context.Context, kind dataset.Kind) DatasetResult {
		if err := ctx.Err(); err != nil {
			log.Warn("dataset load skipped", "dataset", string(kind), "error", err)
			return DatasetResult{Count: c.Count(kind), Err: err}
		}
		res := c.loadKind(bundle, kind)
		if res.Err != nil {
			log.Warn("dataset load failed", "dataset", string(kind), "error", res.Err)
		} else {
			log.Debug("dataset loaded", "dataset", string(kind), "records", res.Count)
		}
		if c.Observer != nil {
			c.Observer.DatasetLoaded(string(kind), resultLabel(res.Err), res.Count)
		}
		return res
	})
	pool.Start(ctx)
	for _, kind := range dataset.Kinds() {
		if err := pool.Submit(kind); err != nil {
			log.Error("dataset not queued", "dataset", string(kind), "error", err)
		}
	}
	report.Results = pool.Wait()

	report.Finished = time.Now()
	if c.Observer != nil {
		c.Observer.LoadFinished(report.Finished.Sub(report.Started))
	}
	log.Info("catalog loaded",
		"records", report.Total(),
		"failed", len(report.Failed()),
		"elapsed", report.Finished.Sub(report.Started))
	return report, nil
}

func (c *Catalog) loadKind(b *dataset.Bundle, kind dataset.Kind) DatasetResult {
	switch kind {
	case dataset.Materials:
		return load(c, b, kind, &c.materials)
	case dataset.Colorants:
		return load(c, b, kind, &c.colorants)
	case dataset.GlazeTypes:
		return load(c, b, kind, &c.glazeTypes)
	case dataset.FiringTypes:
		return load(c, b, kind, &c.firingTypes)
	case dataset.SurfaceEffects:
		return load(c, b, kind, &c.surfaceEffects)
	case dataset.SafetyInfo:
		return load(c, b, kind, &c.safetyInfo)
	case dataset.GlossaryTerms:
		return load(c, b, kind, &c.glossaryTerms)
	case dataset.Recipes:
		return load(c, b, kind, &c.recipes)
	}
	return DatasetResult{Err: errors.New("unknown dataset " + string(kind))}
}

// load decodes kind outside the lock and swaps the result in under it.
func load[T any](c *Catalog, b *dataset.Bundle, kind dataset.Kind, dst *[]T) DatasetResult {
	items, err := dataset.Load[T](b, kind)
	if err != nil {
		items = []T{}
	}
	c.mu.Lock()
	*dst = items
	c.mu.Unlock()
	return DatasetResult{Count: len(items), Err: err}
}

func resultLabel(err error) string {
	var de *dataset.DecodeError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, dataset.ErrNotFound):
		return "not_found"
	case errors.As(err, &de):
		return "decode_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
