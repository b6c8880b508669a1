// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table renders rows of text fields as an HTML <table>.
// A table is built once from a row source, rendered eagerly into an
// ordered sequence of output lines, and never revisited. Cell text is
// copied into the markup verbatim; no HTML escaping is applied.
package table

import (
	"github.com/pdiddy/csvtable/internal/rows"
)

// Render is the ordered sequence of output lines for a rendered table.
// The zero value is the absent render, produced when a table has no data
// rows; consumers must check Absent before using Lines.
type Render struct {
	lines []string
	ok    bool
}

// Absent reports whether the render holds no output at all. An absent
// render is distinct from a render of an empty document: no lines exist,
// not even the table tags.
func (r Render) Absent() bool { return !r.ok }

// Lines returns a copy of the rendered output lines, or nil for an
// absent render.
func (r Render) Lines() []string {
	if !r.ok {
		return nil
	}
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Options controls table construction.
type Options struct {
	// ReadHeaders consumes the first record from the source as the header
	// row instead of data.
	ReadHeaders bool

	// Headers, when non-nil, overrides any header derived from the source.
	Headers []string

	// Rows extends the data rows read from the source.
	Rows [][]string
}

// Table is an HTML rendering of delimited row data. Construct with New
// or FromRows.
type Table struct {
	headers []string // nil when the table has no header row
	rows    [][]string
	render  Render
}

// New reads all records from src and builds a rendered table. Errors
// from the source are returned unchanged; the caller owns recovery
// policy. A source that yields no data rows produces a table with an
// absent render.
func New(src rows.Source, opts Options) (*Table, error) {
	data, err := rows.ReadAll(src)
	if err != nil {
		return nil, err
	}

	var headers []string
	if opts.ReadHeaders && len(data) > 0 {
		headers = data[0]
		data = data[1:]
	}
	if len(opts.Rows) > 0 {
		data = append(data, opts.Rows...)
	}
	if opts.Headers != nil {
		headers = opts.Headers
	}

	return FromRows(data, headers), nil
}

// FromRows builds a rendered table directly from in-memory rows. A nil
// headers slice produces a table without a header row.
func FromRows(data [][]string, headers []string) *Table {
	t := &Table{headers: headers, rows: data}
	t.parse()
	return t
}

// Render returns the table's rendered output.
func (t *Table) Render() Render { return t.render }

// parse builds the render. The first data row fixes the column count for
// header alignment; data rows themselves are emitted verbatim whatever
// their width.
func (t *Table) parse() {
	if len(t.rows) == 0 {
		t.headers = nil
		t.rows = nil
		return
	}
	columns := len(t.rows[0])
	if columns < 1 {
		return
	}

	// Align the header to the column count: pad missing entries with a
	// single space, drop extras.
	if t.headers != nil {
		aligned := make([]string, columns)
		for i := range aligned {
			if i < len(t.headers) {
				aligned[i] = t.headers[i]
			} else {
				aligned[i] = " "
			}
		}
		t.headers = aligned
	}

	lines := make([]string, 0, 2+2*len(t.rows)+columns*(len(t.rows)+1))
	lines = append(lines, "<table>")

	if t.headers != nil {
		lines = append(lines, "\t<tr>")
		for _, h := range t.headers {
			lines = append(lines, "\t\t<th>"+h+"</th>")
		}
		lines = append(lines, "\t</tr>")
	}

	for _, row := range t.rows {
		lines = append(lines, "\t<tr>")
		for _, cell := range row {
			lines = append(lines, "\t\t<td>"+cell+"</td>")
		}
		lines = append(lines, "\t</tr>")
	}

	lines = append(lines, "</table>")
	t.render = Render{lines: lines, ok: true}
}
