// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/csvtable/internal/rows"
	"github.com/pdiddy/csvtable/pkg/types"
)

func TestFromRows_NoHeader(t *testing.T) {
	tbl := FromRows([][]string{{"a", "b"}, {"c", "d"}}, nil)

	want := []string{
		"<table>",
		"\t<tr>",
		"\t\t<td>a</td>",
		"\t\t<td>b</td>",
		"\t</tr>",
		"\t<tr>",
		"\t\t<td>c</td>",
		"\t\t<td>d</td>",
		"\t</tr>",
		"</table>",
	}
	got := tbl.Render().Lines()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
	for _, line := range got {
		if strings.Contains(line, "<th>") {
			t.Errorf("unexpected header cell in %q", line)
		}
	}
}

func TestHeaderAlignment(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		wantTH  []string
	}{
		{
			name:    "header matches column count",
			headers: []string{"x", "y"},
			rows:    [][]string{{"1", "2"}},
			wantTH:  []string{"\t\t<th>x</th>", "\t\t<th>y</th>"},
		},
		{
			name:    "short header padded with single space",
			headers: []string{"x"},
			rows:    [][]string{{"1", "2", "3"}},
			wantTH:  []string{"\t\t<th>x</th>", "\t\t<th> </th>", "\t\t<th> </th>"},
		},
		{
			name:    "long header truncated to column count",
			headers: []string{"x", "y", "z"},
			rows:    [][]string{{"1", "2"}},
			wantTH:  []string{"\t\t<th>x</th>", "\t\t<th>y</th>"},
		},
		{
			name:    "first data row fixes the count, not the widest row",
			headers: []string{"a", "b", "c"},
			rows:    [][]string{{"1", "2"}, {"3", "4", "5"}},
			wantTH:  []string{"\t\t<th>a</th>", "\t\t<th>b</th>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := FromRows(tt.rows, tt.headers)

			var gotTH []string
			for _, line := range tbl.Render().Lines() {
				if strings.Contains(line, "<th>") {
					gotTH = append(gotTH, line)
				}
			}
			if !reflect.DeepEqual(gotTH, tt.wantTH) {
				t.Errorf("header cells = %q, want %q", gotTH, tt.wantTH)
			}
		})
	}
}

func TestRaggedRowsPassThrough(t *testing.T) {
	// Data rows are never padded or truncated, only headers are.
	tbl := FromRows([][]string{{"1", "2", "3"}, {"4"}, {"5", "6", "7", "8"}}, nil)

	var cellCounts []int
	count := 0
	for _, line := range tbl.Render().Lines() {
		switch {
		case strings.Contains(line, "<td>"):
			count++
		case line == "\t</tr>":
			cellCounts = append(cellCounts, count)
			count = 0
		}
	}
	want := []int{3, 1, 4}
	if !reflect.DeepEqual(cellCounts, want) {
		t.Errorf("cells per row = %v, want %v", cellCounts, want)
	}
}

func TestNoRows_AbsentRender(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		headers []string
	}{
		{name: "nil rows"},
		{name: "nil rows with header", headers: []string{"x"}},
		{name: "zero-column first row", rows: [][]string{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := FromRows(tt.rows, tt.headers)
			if !tbl.Render().Absent() {
				t.Fatalf("render = %q, want absent", tbl.Render().Lines())
			}
			if tbl.Render().Lines() != nil {
				t.Error("absent render should have nil lines")
			}
		})
	}
}

func TestCellContentNotEscaped(t *testing.T) {
	// Cell text is copied verbatim; markup-significant characters survive.
	tbl := FromRows([][]string{{`<b>&"bold"</b>`}}, nil)

	lines := tbl.Render().Lines()
	want := "\t\t<td><b>&\"bold\"</b></td>"
	found := false
	for _, line := range lines {
		if line == want {
			found = true
		}
	}
	if !found {
		t.Errorf("lines %q missing verbatim cell %q", lines, want)
	}
}

func TestNew_ReadHeadersFromSource(t *testing.T) {
	src := rows.NewReader(strings.NewReader("name,age\nAlice,30\nBob,25\n"), types.ReaderConfig{})

	tbl, err := New(src, Options{ReadHeaders: true})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"<table>",
		"\t<tr>",
		"\t\t<th>name</th>",
		"\t\t<th>age</th>",
		"\t</tr>",
		"\t<tr>",
		"\t\t<td>Alice</td>",
		"\t\t<td>30</td>",
		"\t</tr>",
		"\t<tr>",
		"\t\t<td>Bob</td>",
		"\t\t<td>25</td>",
		"\t</tr>",
		"</table>",
	}
	if got := tbl.Render().Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestNew_ExplicitHeadersOverrideSource(t *testing.T) {
	src := rows.NewReader(strings.NewReader("name,age\nAlice,30\n"), types.ReaderConfig{})

	tbl, err := New(src, Options{ReadHeaders: true, Headers: []string{"who", "years"}})
	if err != nil {
		t.Fatal(err)
	}

	rendered := strings.Join(tbl.Render().Lines(), "\n")
	if strings.Contains(rendered, "<th>name</th>") {
		t.Error("source-derived header should be replaced")
	}
	if !strings.Contains(rendered, "<th>who</th>") || !strings.Contains(rendered, "<th>years</th>") {
		t.Errorf("explicit headers missing from render:\n%s", rendered)
	}
	if !strings.Contains(rendered, "<td>Alice</td>") {
		t.Errorf("data row missing from render:\n%s", rendered)
	}
}

func TestNew_ExtraRowsExtendSource(t *testing.T) {
	src := rows.NewReader(strings.NewReader("1,2\n"), types.ReaderConfig{})

	tbl, err := New(src, Options{Rows: [][]string{{"3", "4"}}})
	if err != nil {
		t.Fatal(err)
	}

	rendered := strings.Join(tbl.Render().Lines(), "\n")
	if !strings.Contains(rendered, "<td>1</td>") || !strings.Contains(rendered, "<td>3</td>") {
		t.Errorf("expected source and extra rows in render:\n%s", rendered)
	}
}

func TestNew_EmptySource(t *testing.T) {
	src := rows.NewReader(strings.NewReader(""), types.ReaderConfig{})

	tbl, err := New(src, Options{ReadHeaders: true})
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Render().Absent() {
		t.Errorf("render = %q, want absent", tbl.Render().Lines())
	}
}

func TestNew_HeaderOnlyInput(t *testing.T) {
	// Consuming the only row as a header leaves zero data rows.
	src := rows.NewReader(strings.NewReader("name,age\n"), types.ReaderConfig{})

	tbl, err := New(src, Options{ReadHeaders: true})
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.Render().Absent() {
		t.Errorf("render = %q, want absent", tbl.Render().Lines())
	}
}

func TestRenderLinesAreACopy(t *testing.T) {
	tbl := FromRows([][]string{{"a"}}, nil)

	lines := tbl.Render().Lines()
	lines[0] = "mutated"
	if got := tbl.Render().Lines()[0]; got != "<table>" {
		t.Errorf("render mutated through Lines copy: %q", got)
	}
}
