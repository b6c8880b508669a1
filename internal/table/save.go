// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
)

// ErrOutputExists reports that Save refused to replace an existing
// destination. Check with errors.Is; other I/O failures propagate as-is.
var ErrOutputExists = errors.New("output file already exists")

// Save writes the render to path, one output line per text line. An
// existing destination is an error unless overwrite is set. A table with
// an absent render writes an empty file. The write is atomic: the
// destination is never left with partial output.
func (t *Table) Save(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrOutputExists)
		}
	}

	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteTo streams the render to w, terminating each line with a newline.
// A table with an absent render writes nothing.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if t.render.Absent() {
		return 0, nil
	}
	var n int64
	for _, line := range t.render.lines {
		written, err := io.WriteString(w, line+"\n")
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
