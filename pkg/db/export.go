package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/japaniel/glazekb/pkg/catalog"
	"github.com/japaniel/glazekb/pkg/dataset"
	"github.com/japaniel/glazekb/pkg/glaze"
)

// DefaultBatchSize is the number of entries written per transaction by Export.
const DefaultBatchSize = 200

type labelled interface {
	Label() string
}

func appendEntries[T labelled](out []Entry, kind dataset.Kind, runID string, items []T, key func(T) string) ([]Entry, error) {
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return nil, fmt.Errorf("encode %s/%s: %w", kind, key(it), err)
		}
		out = append(out, Entry{
			Kind:    string(kind),
			EntryID: key(it),
			Title:   it.Label(),
			Payload: string(payload),
			RunID:   runID,
		})
	}
	return out, nil
}

func stringKey[T interface{ Key() string }](v T) string { return v.Key() }

// Snapshot converts every record currently held by cat into entries tagged
// with runID, grouped by kind in dataset order.
func Snapshot(cat *catalog.Catalog, runID string) ([]Entry, error) {
	out, err := appendEntries(nil, dataset.Materials, runID, cat.Materials(), stringKey[glaze.Material])
	if err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.Colorants, runID, cat.Colorants(), stringKey[glaze.Colorant]); err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.GlazeTypes, runID, cat.GlazeTypes(), stringKey[glaze.GlazeType]); err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.FiringTypes, runID, cat.FiringTypes(), stringKey[glaze.FiringType]); err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.SurfaceEffects, runID, cat.SurfaceEffects(), stringKey[glaze.SurfaceEffect]); err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.SafetyInfo, runID, cat.SafetyInfo(), stringKey[glaze.SafetyInfo]); err != nil {
		return nil, err
	}
	if out, err = appendEntries(out, dataset.GlossaryTerms, runID, cat.GlossaryTerms(), stringKey[glaze.GlossaryTerm]); err != nil {
		return nil, err
	}
	return appendEntries(out, dataset.Recipes, runID, cat.Recipes(), func(r glaze.Recipe) string {
		return strconv.Itoa(r.Key())
	})
}

// LoadRunFromReport flattens a catalog load report for storage.
func LoadRunFromReport(report catalog.LoadReport) LoadRun {
	run := LoadRun{
		RunID:        report.RunID.String(),
		StartedAt:    report.Started,
		FinishedAt:   report.Finished,
		TotalRecords: report.Total(),
	}
	for _, kind := range dataset.Kinds() {
		res, ok := report.Results[kind]
		if !ok {
			continue
		}
		c := KindCount{Kind: string(kind), Records: res.Count}
		if res.Err != nil {
			c.Error = res.Err.Error()
		}
		run.Counts = append(run.Counts, c)
	}
	return run
}

// Export writes the catalog's current contents to conn under the report's
// run id, removes entries left over from earlier runs and records the run.
// It returns the number of entries written. batchSize <= 0 uses
// DefaultBatchSize.
//
// conn must not be used by anything else until Export returns.
func Export(ctx context.Context, conn *sql.DB, cat *catalog.Catalog, report catalog.LoadReport, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	run := LoadRunFromReport(report)
	entries, err := Snapshot(cat, run.RunID)
	if err != nil {
		return 0, err
	}
	return writeSnapshot(ctx, conn, run, entries, batchSize)
}

// writeSnapshot stores entries and run. A snapshot that fits in one batch is
// written in a single transaction together with the prune and the run record,
// so a failure leaves the previous snapshot as it was. Larger snapshots commit
// batch by batch: when one fails, batches already committed stay under the new
// run id, no run is recorded, and the next successful export prunes them.
func writeSnapshot(ctx context.Context, conn *sql.DB, run LoadRun, entries []Entry, batchSize int) (int, error) {
	if len(entries) <= batchSize {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return 0, fmt.Errorf("begin snapshot tx: %w", err)
		}
		defer func() {
			_ = tx.Rollback()
		}()
		for _, e := range entries {
			if err := UpsertEntry(tx, e); err != nil {
				return 0, err
			}
		}
		if err := finishRun(tx, run); err != nil {
			return 0, err
		}
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("commit snapshot: %w", err)
		}
		return len(entries), nil
	}

	bw := NewBatchWriter(conn, batchSize)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			bw.Close()
			return 0, err
		}
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			return UpsertEntry(tx, e)
		}); err != nil {
			bw.Close()
			return 0, err
		}
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("write entries: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin run tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if err := finishRun(tx, run); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	return len(entries), nil
}

// finishRun drops entries from other runs and records run.
func finishRun(db DBExecutor, run LoadRun) error {
	if _, err := PruneEntries(db, run.RunID); err != nil {
		return fmt.Errorf("prune entries: %w", err)
	}
	return RecordLoadRun(db, run)
}
