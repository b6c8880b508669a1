// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rows reads delimited text records for table construction.
// Field splitting is delegated to encoding/csv; this package pins the
// conventions the rest of the pipeline relies on: configurable delimiter,
// lenient quoting, leading whitespace stripped after a delimiter, and
// ragged records passed through without a field-count error.
package rows

import (
	"encoding/csv"
	"io"

	"github.com/pdiddy/csvtable/pkg/types"
)

// Source yields one record of ordered UTF-8 text fields per call and
// io.EOF when the input is exhausted. *csv.Reader satisfies Source.
type Source interface {
	Read() ([]string, error)
}

// NewReader returns a csv.Reader over r configured per cfg.
func NewReader(r io.Reader, cfg types.ReaderConfig) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma()
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr
}

// ReadAll drains src into memory and returns the records in input order.
// Errors from the source are returned unchanged.
func ReadAll(src Source) ([][]string, error) {
	var records [][]string
	for {
		rec, err := src.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
