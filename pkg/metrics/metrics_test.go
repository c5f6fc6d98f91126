package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.LoadStarted()
	if got := testutil.ToFloat64(r.loading); got != 1 {
		t.Fatalf("expected loading=1, got %v", got)
	}
	r.DatasetLoaded("materials", "ok", 5)
	r.DatasetLoaded("colorants", "decode_error", 0)
	r.DatasetLoaded("materials", "ok", 4)
	r.LoadFinished(20 * time.Millisecond)

	if got := testutil.ToFloat64(r.loading); got != 0 {
		t.Errorf("expected loading=0, got %v", got)
	}
	if got := testutil.ToFloat64(r.loads.WithLabelValues("materials", "ok")); got != 2 {
		t.Errorf("expected 2 material loads, got %v", got)
	}
	if got := testutil.ToFloat64(r.records.WithLabelValues("materials")); got != 4 {
		t.Errorf("expected 4 material records, got %v", got)
	}
	if got := testutil.ToFloat64(r.loads.WithLabelValues("colorants", "decode_error")); got != 1 {
		t.Errorf("expected 1 colorant decode error, got %v", got)
	}
	if n := testutil.CollectAndCount(r.duration); n != 1 {
		t.Errorf("expected one histogram series, got %d", n)
	}
}

func TestRegistryGathers(t *testing.T) {
	r := NewRecorder()
	r.DatasetLoaded("recipes", "ok", 3)
	mfs, err := r.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{"glazekb_dataset_loads_total", "glazekb_dataset_records", "glazekb_catalog_loading"} {
		if !names[want] {
			t.Errorf("metric %s not gathered; got %v", want, names)
		}
	}
}
