// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/csvtable/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Convert multiple CSV files from a YAML job list",
	Long: `Batch reads a YAML file describing conversion jobs and runs them in
order. Each job names an input and output file and may set read_headers,
browser, overwrite, and delimiter per job:

    jobs:
      - input: people.csv
        output: people.html
        read_headers: true
        browser: true

A failed job does not stop the batch; a summary is printed at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	jf, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	result := batch.Run(jf.Jobs, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d job(s) failed", result.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
