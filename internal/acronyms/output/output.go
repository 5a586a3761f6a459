// Package output prints acronym records and database summaries.
package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nsqlite/acronyms/internal/acronyms/styled"
	"github.com/nsqlite/acronyms/internal/db"
	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/nsqlite/acronyms/internal/util/numutil"
	"github.com/nsqlite/acronyms/internal/util/timeutil"
)

const (
	labelWidth = 14
	wrapWidth  = 66
)

// Session is the part of *db.DB used for printing.
type Session interface {
	Search(ctx context.Context, pattern string) (*db.Rows, error)
	Latest(ctx context.Context, limit int) (*db.Rows, error)
	RecordCount(ctx context.Context) string
	SQLiteVersion(ctx context.Context) string
	NewestAcronym(ctx context.Context) string
}

// Printer writes human readable output to Out.
type Printer struct {
	Out io.Writer
	// TimeLocation is used for timestamps, nil means local time.
	TimeLocation *time.Location
	Ints         numutil.IntFormatter
}

// Record prints a single record as a block of labelled fields.
func (p Printer) Record(rec db.Record) {
	p.field("ID", strconv.FormatInt(rec.ID, 10))
	p.field("ACRONYM", rec.Acronym)
	p.field("DEFINITION", rec.Definition)
	p.field("SOURCE", rec.Source)
	p.field("LAST UPDATE", timeutil.FormatTimestamp(rec.Changed, p.TimeLocation))
	p.field("DESCRIPTION", indentWrapped(rec.Description))
	fmt.Fprintln(p.Out)
}

// Records prints every record of rows and returns how many were printed.
// rows is always closed.
func (p Printer) Records(rows *db.Rows) (int64, error) {
	var count int64
	for rec, err := range rows.All() {
		if err != nil {
			return count, err
		}
		p.Record(rec)
		count++
	}
	return count, nil
}

// Search prints the records matching term followed by the match count.
func (p Printer) Search(ctx context.Context, session Session, term string) error {
	rows, err := session.Search(ctx, term)
	if err != nil {
		return err
	}

	count, err := p.Records(rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.Out, "Search for '%s' found %s matches.\n", term, p.Ints.Format(count))
	if count == 0 && !strings.ContainsAny(term, "%_") {
		styled.DimmedColor().Fprintf(p.Out, "Tip: use %% as a wildcard, e.g. '%s%%'\n", term)
	}
	return nil
}

// Latest prints the limit most recently added records.
func (p Printer) Latest(ctx context.Context, session Session, limit int) error {
	rows, err := session.Latest(ctx, limit)
	if err != nil {
		return err
	}

	count, err := p.Records(rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.Out, "Listed the %s most recently added records.\n", p.Ints.Format(count))
	return nil
}

// Info prints a summary table of the database.
func (p Printer) Info(ctx context.Context, session Session, loc locator.Location) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Database", "Details"})
	tw.AppendRows([]table.Row{
		{"File name", loc.Name},
		{"Full path", loc.Path},
		{"Found via", loc.Source.Value},
		{"Size", numutil.FormatByteSize(loc.Size)},
		{"Last modified", timeutil.FormatTimestamp(loc.ModTime.Unix(), p.TimeLocation)},
		{"Records", session.RecordCount(ctx)},
		{"Newest acronym", session.NewestAcronym(ctx)},
		{"SQLite version", session.SQLiteVersion(ctx)},
	})

	fmt.Fprintln(p.Out, tw.Render())
	styled.DimmedColor().Fprintf(p.Out, "Run with --help to see how to search the database\n")
}

func (p Printer) field(label string, value string) {
	styled.LabelColor().Fprintf(p.Out, "%-*s", labelWidth, label+":")
	fmt.Fprintln(p.Out, value)
}

// indentWrapped wraps s and aligns the continuation lines with the
// field values.
func indentWrapped(s string) string {
	wrapped := text.WrapSoft(s, wrapWidth)
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", labelWidth))
}
