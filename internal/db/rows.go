package db

import (
	"database/sql"
	"fmt"
	"iter"
)

// Rows is a cursor over query results. It must be closed once the caller
// is done with it, either explicitly or by ranging over All.
type Rows struct {
	db     *DB
	rows   *sql.Rows
	record Record
	err    error
	closed bool
}

// Next advances to the next record. It returns false when there are no
// more records or an error happened, in both cases the cursor is closed.
func (r *Rows) Next() bool {
	if r.closed {
		return false
	}

	if !r.rows.Next() {
		r.err = r.rows.Err()
		_ = r.Close()
		return false
	}

	rec := Record{}
	err := r.rows.Scan(
		&rec.ID, &rec.Acronym, &rec.Definition,
		&rec.Source, &rec.Description, &rec.Changed,
	)
	if err != nil {
		r.err = fmt.Errorf("failed to scan record: %w", err)
		_ = r.Close()
		return false
	}

	r.record = rec
	return true
}

// Record returns the current record.
func (r *Rows) Record() Record {
	return r.record
}

// Err returns the error that stopped the iteration, if any.
func (r *Rows) Err() error {
	return r.err
}

// Close releases the cursor, calling it again is a no-op.
func (r *Rows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	delete(r.db.cursors, r)
	return r.rows.Close()
}

// All returns an iterator over the remaining records. The cursor is closed
// when the loop ends, including on break. An iteration error is yielded
// as the last element.
func (r *Rows) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		defer r.Close()

		for r.Next() {
			if !yield(r.record, nil) {
				return
			}
		}
		if r.err != nil {
			yield(Record{}, r.err)
		}
	}
}
