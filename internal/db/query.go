package db

import (
	"context"
	"fmt"

	"github.com/nsqlite/acronyms/internal/log"
)

const selectRecord = `
	SELECT
		rowid,
		ifnull(Acronym, ''),
		ifnull(Definition, ''),
		ifnull(Source, ''),
		ifnull(Description, ''),
		ifnull(Changed, 0)
	FROM ` + TableName

// Search returns the records whose acronym matches the LIKE pattern,
// ignoring case, ordered by source. The pattern is always bound as a
// parameter.
//
// The returned Rows must be closed, ranging over Rows.All does it.
func (db *DB) Search(ctx context.Context, pattern string) (*Rows, error) {
	return db.query(
		ctx, "search",
		selectRecord+` WHERE Acronym LIKE ? COLLATE NOCASE ORDER BY Source ASC`,
		pattern,
	)
}

// Latest returns the last limit records added, newest first. A limit
// lower than one uses DefaultLatestLimit.
func (db *DB) Latest(ctx context.Context, limit int) (*Rows, error) {
	if limit < 1 {
		limit = DefaultLatestLimit
	}
	return db.query(
		ctx, "latest",
		selectRecord+` ORDER BY rowid DESC LIMIT ?`,
		limit,
	)
}

func (db *DB) query(
	ctx context.Context, name string, query string, params ...any,
) (*Rows, error) {
	if db.closed {
		return nil, ErrClosed
	}

	db.Logger.DebugNs(log.NsDatabase, "running query", log.KV{
		"session": db.id,
		"query":   name,
		"params":  params,
	})

	rows, err := db.conn.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", name, err)
	}

	cursor := &Rows{db: db, rows: rows}
	db.cursors[cursor] = struct{}{}
	return cursor, nil
}
