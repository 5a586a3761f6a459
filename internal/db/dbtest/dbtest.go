// Package dbtest builds acronyms databases for tests.
package dbtest

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// Row is a row inserted into a test database, nil pointers are stored
// as NULL.
type Row struct {
	Acronym     string
	Definition  string
	Source      *string
	Description *string
	Changed     int64
}

// Str returns a pointer to s.
func Str(s string) *string {
	return &s
}

// CreateFixture writes an acronyms database with the given rows into a
// temporary directory and returns its location.
func CreateFixture(t *testing.T, rows ...Row) locator.Location {
	t.Helper()

	path := filepath.Join(t.TempDir(), locator.DefaultFileName)
	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`
		CREATE TABLE ACRONYMS (
			Acronym TEXT COLLATE NOCASE,
			Definition TEXT,
			Source TEXT,
			Description TEXT,
			Changed INTEGER
		)
	`)
	require.NoError(t, err)

	for _, row := range rows {
		_, err := conn.Exec(
			`INSERT INTO ACRONYMS (Acronym, Definition, Source, Description, Changed)
			VALUES (?, ?, ?, ?, ?)`,
			row.Acronym, row.Definition, row.Source, row.Description, row.Changed,
		)
		require.NoError(t, err)
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	return locator.Location{
		Path:    path,
		Name:    info.Name(),
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Source:  locator.SourceEnv,
	}
}

// DefaultRows returns a small set of rows, two of them share the API
// acronym with different sources.
func DefaultRows() []Row {
	return []Row{
		{Acronym: "API", Definition: "Application Programming Interface", Source: Str("General ICT"), Description: Str("How programs talk"), Changed: 1710315965},
		{Acronym: "TCP", Definition: "Transmission Control Protocol", Source: Str("Networking"), Changed: 1710315966},
		{Acronym: "API", Definition: "Air Pollution Index", Source: Str("Environment"), Changed: 1710315967},
		{Acronym: "DNS", Definition: "Domain Name System", Source: Str("Networking"), Changed: 1710315968},
		{Acronym: "RAM", Definition: "Random Access Memory", Source: Str("Hardware"), Changed: 1710315969},
		{Acronym: "CPU", Definition: "Central Processing Unit", Source: Str("Hardware"), Changed: 1710315970},
	}
}
