// Package db provides the read-only SQLite session for the acronyms
// database.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/nsqlite/acronyms/internal/log"
	"github.com/nsqlite/acronyms/internal/util/numutil"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// ErrorSentinel replaces summary values that could not be queried.
	ErrorSentinel = "ERROR"
	// DefaultLatestLimit is used by Latest when the limit is not positive.
	DefaultLatestLimit = 5
	// TableName is the table holding the acronyms.
	TableName = "ACRONYMS"
)

// ErrClosed is returned by queries on a closed DB.
var ErrClosed = errors.New("database session is closed")

// Config represents the configuration for a DB instance.
type Config struct {
	// Logger is the shared acronyms logger.
	Logger log.Logger
	// Location is the resolved database file.
	Location locator.Location
	// IntFormatter formats RecordCount, the zero value groups with commas.
	IntFormatter numutil.IntFormatter
}

// DB is an open read-only session on the acronyms database.
//
// A DB is meant to be used by a single goroutine.
type DB struct {
	Config
	id      string
	conn    *sql.DB
	closed  bool
	cursors map[*Rows]struct{}
}

// Record is one row of the acronyms table. Text columns are never NULL,
// missing values are empty strings.
type Record struct {
	ID          int64
	Acronym     string
	Definition  string
	Source      string
	Description string
	// Changed is the last update time in epoch seconds.
	Changed int64
}

func createDSN(dbPath string) string {
	qp := url.Values{}
	qp.Add("mode", "ro")
	qp.Add("_query_only", "true")
	qp.Add("_busy_timeout", "5000")

	// SQLite parses the DSN as a URI, so "?", "#" and "%" in the file
	// name must be escaped.
	escapedPath := (&url.URL{Path: dbPath}).EscapedPath()
	return fmt.Sprintf("file:%s?%s", escapedPath, qp.Encode())
}

// Open opens the database at config.Location read-only and checks that it
// holds the acronyms table. Failures are returned as *OpenError.
func Open(ctx context.Context, config Config) (*DB, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Location.Path == "" {
		return nil, errors.New("database location is required")
	}
	path := config.Location.Path

	conn, err := sql.Open("sqlite3", createDSN(path))
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	conn.SetConnMaxIdleTime(0)
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := verifySchema(ctx, conn); err != nil {
		conn.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	db := &DB{
		Config:  config,
		id:      uuid.NewString(),
		conn:    conn,
		cursors: make(map[*Rows]struct{}),
	}

	config.Logger.DebugNs(log.NsDatabase, "database opened", log.KV{
		"session": db.id,
		"path":    path,
	})
	return db, nil
}

// verifySchema reads the schema, which also fails for files that are not
// SQLite databases.
func verifySchema(ctx context.Context, conn *sql.DB) error {
	var name string
	err := conn.QueryRowContext(
		ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? COLLATE NOCASE`,
		TableName,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("table %s not found", TableName)
	}
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	return nil
}

// ID returns the unique identifier of this session, used in logs.
func (db *DB) ID() string {
	return db.id
}

// Close releases any cursor still open and then the connection. Calling
// Close more than once is a no-op.
func (db *DB) Close() error {
	if db.closed {
		return nil
	}
	db.closed = true

	for cursor := range db.cursors {
		db.Logger.WarnNs(log.NsDatabase, "cursor closed with its session", log.KV{
			"session": db.id,
		})
		_ = cursor.Close()
	}

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	db.Logger.DebugNs(log.NsDatabase, "database closed", log.KV{
		"session": db.id,
	})
	return nil
}

// Count returns the number of rows in the acronyms table.
func (db *DB) Count(ctx context.Context) (int64, error) {
	if db.closed {
		return 0, ErrClosed
	}

	var count int64
	err := db.conn.QueryRowContext(ctx, `SELECT count(*) FROM `+TableName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// RecordCount returns the formatted row count or ErrorSentinel.
func (db *DB) RecordCount(ctx context.Context) string {
	count, err := db.Count(ctx)
	if err != nil {
		db.summaryFailed("record count", err)
		return ErrorSentinel
	}
	return db.IntFormatter.Format(count)
}

// SQLiteVersion returns the version of the SQLite engine or ErrorSentinel.
func (db *DB) SQLiteVersion(ctx context.Context) string {
	if db.closed {
		db.summaryFailed("sqlite version", ErrClosed)
		return ErrorSentinel
	}

	var version string
	if err := db.conn.QueryRowContext(ctx, `SELECT sqlite_version()`).Scan(&version); err != nil {
		db.summaryFailed("sqlite version", err)
		return ErrorSentinel
	}
	return version
}

// NewestAcronym returns the acronym with the highest rowid, an empty
// string for an empty table, or ErrorSentinel.
func (db *DB) NewestAcronym(ctx context.Context) string {
	if db.closed {
		db.summaryFailed("newest acronym", ErrClosed)
		return ErrorSentinel
	}

	var acronym string
	err := db.conn.QueryRowContext(
		ctx,
		`SELECT ifnull(Acronym, '') FROM `+TableName+` ORDER BY rowid DESC LIMIT 1`,
	).Scan(&acronym)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		db.summaryFailed("newest acronym", err)
		return ErrorSentinel
	}
	return acronym
}

func (db *DB) summaryFailed(what string, err error) {
	db.Logger.ErrorNs(log.NsDatabase, "summary query failed", log.KV{
		"session": db.id,
		"query":   what,
		"error":   err.Error(),
	})
}
