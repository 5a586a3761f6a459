package repl

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nsqlite/acronyms/internal/acronyms/output"
	"github.com/nsqlite/acronyms/internal/db"
	"github.com/nsqlite/acronyms/internal/db/dbtest"
	"github.com/nsqlite/acronyms/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	text.DisableColors()
	os.Exit(m.Run())
}

func newTestRepl(t *testing.T) (Repl, *bytes.Buffer, *db.DB) {
	t.Helper()

	logger := log.NewLogger(io.Discard, false)
	loc := dbtest.CreateFixture(t, dbtest.DefaultRows()...)
	session, err := db.Open(context.Background(), db.Config{Logger: logger, Location: loc})
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	buf := &bytes.Buffer{}
	printer := output.Printer{Out: buf, TimeLocation: time.UTC}
	rp := NewRepl(context.Background(), logger, printer, session, loc)
	rp.historyPath = t.TempDir() + "/history"
	return rp, buf, session
}

func TestHandle(t *testing.T) {
	t.Run("Quit", func(t *testing.T) {
		rp, _, _ := newTestRepl(t)
		for _, input := range []string{".quit", ".exit", "exit"} {
			assert.True(t, rp.handle(input), input)
		}
	})

	t.Run("ImplicitSearch", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle("tcp"))
		assert.Contains(t, buf.String(), "Transmission Control Protocol")
		assert.Contains(t, buf.String(), "Search for 'tcp' found 1 matches.")
	})

	t.Run("SearchCommand", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".search dns"))
		assert.Contains(t, buf.String(), "Domain Name System")
	})

	t.Run("SearchWithoutTerm", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".search"))
		assert.Contains(t, buf.String(), "Missing search term")
	})

	t.Run("LatestDefault", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".latest"))
		assert.Contains(t, buf.String(), "Listed the 5 most recently added records.")
	})

	t.Run("LatestWithLimit", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".latest 1"))
		assert.Contains(t, buf.String(), "Central Processing Unit")
		assert.Contains(t, buf.String(), "Listed the 1 most recently added records.")
	})

	t.Run("LatestInvalid", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".latest abc"))
		assert.Contains(t, buf.String(), "Invalid number of records")
	})

	t.Run("Info", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".info"))
		assert.Contains(t, buf.String(), rp.location.Path)
	})

	t.Run("Help", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".help"))
		assert.Contains(t, buf.String(), "Available commands:")
		assert.Contains(t, buf.String(), ".latest [n]")
	})

	t.Run("UnknownCommand", func(t *testing.T) {
		rp, buf, _ := newTestRepl(t)
		assert.False(t, rp.handle(".nope"))
		assert.Contains(t, buf.String(), "Unknown command")
	})

	t.Run("QueryErrorKeepsPrompt", func(t *testing.T) {
		rp, buf, session := newTestRepl(t)
		require.NoError(t, session.Close())
		assert.False(t, rp.handle("api"))
		assert.Contains(t, buf.String(), "Error: "+db.ErrClosed.Error())
	})
}

func TestCmdHelpCompleter(t *testing.T) {
	assert.Equal(t, []string{".latest "}, cmdHelpCompleter(".la"))
	assert.Equal(t, []string{".quit"}, cmdHelpCompleter(".Q"))
	assert.Empty(t, cmdHelpCompleter("api"))
	assert.Len(t, cmdHelpCompleter("."), 7)
}
