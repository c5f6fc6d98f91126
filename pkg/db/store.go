package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/japaniel/glazekb/pkg/glaze"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

const themeKey = "theme"

// GetTheme returns the stored theme. A missing or unrecognised value reads
// as glaze.ThemeSystem.
func GetTheme(db DBExecutor) (glaze.ThemeMode, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return glaze.ThemeSystem, nil
	}
	if err != nil {
		return glaze.ThemeSystem, fmt.Errorf("read theme: %w", err)
	}
	mode, err := glaze.ParseThemeMode(value)
	if err != nil {
		return glaze.ThemeSystem, nil
	}
	return mode, nil
}

// SetTheme stores mode, replacing any previous value.
func SetTheme(db DBExecutor, mode glaze.ThemeMode) error {
	if _, err := glaze.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	_, err := db.Exec(`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		themeKey, string(mode), time.Now())
	if err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// UpsertEntry inserts e or overwrites the row with the same kind and entry id.
func UpsertEntry(db DBExecutor, e Entry) error {
	if strings.TrimSpace(e.Kind) == "" || strings.TrimSpace(e.EntryID) == "" {
		return fmt.Errorf("entry kind and id must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO entries (kind, entry_id, title, payload, run_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, entry_id) DO UPDATE SET
		  title = excluded.title,
		  payload = excluded.payload,
		  run_id = excluded.run_id`,
		e.Kind, e.EntryID, e.Title, e.Payload, e.RunID)
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", e.Kind, e.EntryID, err)
	}
	return nil
}

// PruneEntries deletes entries written by any run other than runID and
// returns how many were removed.
func PruneEntries(db DBExecutor, runID string) (int64, error) {
	res, err := db.Exec(`DELETE FROM entries WHERE run_id <> ?`, runID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetEntries returns the stored entries of kind in insertion order.
func GetEntries(db DBExecutor, kind string) ([]Entry, error) {
	rows, err := db.Query(`SELECT kind, entry_id, title, payload, run_id FROM entries WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Kind, &e.EntryID, &e.Title, &e.Payload, &e.RunID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordLoadRun stores run and its per-kind counts.
func RecordLoadRun(db DBExecutor, run LoadRun) error {
	if run.RunID == "" {
		return fmt.Errorf("run id must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO load_runs (run_id, started_at, finished_at, total_records) VALUES (?, ?, ?, ?)`,
		run.RunID, run.StartedAt, run.FinishedAt, run.TotalRecords)
	if err != nil {
		return fmt.Errorf("insert load run: %w", err)
	}
	for _, c := range run.Counts {
		_, err := db.Exec(`INSERT INTO load_counts (run_id, kind, records, error) VALUES (?, ?, ?, ?)`,
			run.RunID, c.Kind, c.Records, nullableString(c.Error))
		if err != nil {
			return fmt.Errorf("insert load count %s: %w", c.Kind, err)
		}
	}
	return nil
}

// GetLoadRun reads back a run recorded by RecordLoadRun.
func GetLoadRun(db DBExecutor, runID string) (LoadRun, error) {
	run := LoadRun{RunID: runID}
	err := db.QueryRow(`SELECT started_at, finished_at, total_records FROM load_runs WHERE run_id = ?`, runID).
		Scan(&run.StartedAt, &run.FinishedAt, &run.TotalRecords)
	if err != nil {
		return LoadRun{}, err
	}
	rows, err := db.Query(`SELECT kind, records, error FROM load_counts WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return LoadRun{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var c KindCount
		var msg sql.NullString
		if err := rows.Scan(&c.Kind, &c.Records, &msg); err != nil {
			return LoadRun{}, err
		}
		if msg.Valid {
			c.Error = msg.String
		}
		run.Counts = append(run.Counts, c)
	}
	if err := rows.Err(); err != nil {
		return LoadRun{}, err
	}
	return run, nil
}

// nullableString returns nil for "" else the value.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
