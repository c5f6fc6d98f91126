package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// WriteFunc performs writes inside a batch transaction.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

var ErrBatchWriterClosed = &BatchWriterError{"batch writer closed"}

type BatchWriterError struct{ msg string }

func (e *BatchWriterError) Error() string { return e.msg }

// BatchWriter buffers writes and commits each full buffer in one transaction
// on a background goroutine. The first failed batch is rolled back and its
// error is returned by Close; later batches still run.
type BatchWriter struct {
	mu     sync.Mutex
	buf    []WriteFunc
	size   int
	closed bool

	commitCh chan []WriteFunc
	wg       sync.WaitGroup
	db       *sql.DB

	// OnError is called for every failed batch, from the committer goroutine.
	OnError func(error)

	errMu   sync.Mutex
	lastErr error
	batches int
}

// NewBatchWriter starts a writer that commits every size submissions.
func NewBatchWriter(db *sql.DB, size int) *BatchWriter {
	if size <= 0 {
		size = 100
	}
	bw := &BatchWriter{
		buf:      make([]WriteFunc, 0, size),
		size:     size,
		commitCh: make(chan []WriteFunc, 2),
		db:       db,
	}
	bw.wg.Add(1)
	go bw.committer()
	return bw
}

// Submit enqueues w. It blocks while the committer is two batches behind.
func (bw *BatchWriter) Submit(w WriteFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return ErrBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.size {
		bw.flushLocked()
	}
	return nil
}

// flushLocked assumes bw.mu is held.
func (bw *BatchWriter) flushLocked() {
	if len(bw.buf) == 0 {
		return
	}
	bw.commitCh <- bw.buf
	bw.buf = make([]WriteFunc, 0, bw.size)
}

func (bw *BatchWriter) committer() {
	defer bw.wg.Done()
	for batch := range bw.commitCh {
		err := bw.executeBatch(batch)
		bw.errMu.Lock()
		bw.batches++
		if err != nil && bw.lastErr == nil {
			bw.lastErr = err
		}
		bw.errMu.Unlock()
		if err != nil && bw.OnError != nil {
			bw.OnError(err)
		}
	}
}

func (bw *BatchWriter) executeBatch(batch []WriteFunc) error {
	ctx := context.Background()
	tx, err := bw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch (%d items): %w", len(batch), err)
	}
	return nil
}

// Batches reports how many batches the committer has processed.
func (bw *BatchWriter) Batches() int {
	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.batches
}

// Close flushes what is buffered, waits for the committer and returns the
// first batch error. Closing twice returns ErrBatchWriterClosed.
func (bw *BatchWriter) Close() error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return ErrBatchWriterClosed
	}
	bw.closed = true
	bw.flushLocked()
	bw.mu.Unlock()

	close(bw.commitCh)
	bw.wg.Wait()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	return bw.lastErr
}
