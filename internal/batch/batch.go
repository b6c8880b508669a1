// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts multiple CSV files described by a YAML job list.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/csvtable/internal/rows"
	"github.com/pdiddy/csvtable/internal/table"
	"github.com/pdiddy/csvtable/pkg/types"
)

// Job describes one CSV-to-HTML conversion in a job file.
type Job struct {
	// Input is the CSV file to read.
	Input string `yaml:"input"`

	// Output is the HTML file to write.
	Output string `yaml:"output"`

	// ReadHeaders treats the first input row as the table header.
	ReadHeaders bool `yaml:"read_headers"`

	// Browser wraps the output in a minimal HTML document.
	Browser bool `yaml:"browser"`

	// Overwrite replaces an existing output file; without it an existing
	// output counts as skipped.
	Overwrite bool `yaml:"overwrite"`

	// Delimiter overrides the field separator for this job.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// JobFile is the on-disk representation of a batch run.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads and validates a YAML job file. Every job must name an input
// and an output.
func Load(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	for i, job := range jf.Jobs {
		if job.Input == "" {
			return nil, fmt.Errorf("job %d: missing input", i+1)
		}
		if job.Output == "" {
			return nil, fmt.Errorf("job %d: missing output", i+1)
		}
	}
	return &jf, nil
}

// Result holds the outcome of a batch run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of jobs processed.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any jobs failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run converts each job in order, printing a per-job status line to w
// and a trailing summary. A failed job does not stop the batch. Jobs
// whose output already exists without overwrite are counted as skipped.
func Run(jobs []Job, w io.Writer) Result {
	var result Result
	for _, job := range jobs {
		switch err := runJob(job); {
		case err == nil:
			fmt.Fprintf(w, "converted: %s -> %s\n", job.Input, job.Output)
			result.Converted++
		case errors.Is(err, table.ErrOutputExists):
			fmt.Fprintf(w, "skipped: %s (output exists)\n", job.Input)
			result.Skipped++
		default:
			fmt.Fprintf(w, "failed:  %s (%v)\n", job.Input, err)
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

func runJob(job Job) error {
	f, err := os.Open(job.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	src := rows.NewReader(f, types.ReaderConfig{Delimiter: job.Delimiter})
	tbl, err := table.New(src, table.Options{ReadHeaders: job.ReadHeaders})
	if err != nil {
		return err
	}
	if job.Browser {
		tbl.WrapDocument()
	}
	return tbl.Save(job.Output, job.Overwrite)
}
