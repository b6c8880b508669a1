// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/csvtable/internal/rows"
	"github.com/pdiddy/csvtable/internal/table"
	"github.com/pdiddy/csvtable/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	var in io.Reader
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input file %q could not be found", args[0])
			}
			return err
		}
		defer f.Close()
		in = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no input given: name an input file or pipe data on stdin")
		}
		in = os.Stdin
	}

	src := rows.NewReader(in, cfg.ReaderConfig)
	tbl, err := table.New(src, table.Options{ReadHeaders: cfg.ReadHeaders})
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if cfg.Browser {
		tbl.WrapDocument()
	}

	if len(args) > 1 {
		return tbl.Save(args[1], cfg.Overwrite)
	}
	_, err = tbl.WriteTo(os.Stdout)
	return err
}

// convertConfig merges flags over config-file/env defaults. A flag set on
// the command line wins; otherwise the viper value applies.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		ReaderConfig: types.ReaderConfig{Delimiter: viper.GetString("delimiter")},
		ReadHeaders:  viper.GetBool("read_headers"),
		Browser:      viper.GetBool("browser"),
		Overwrite:    viper.GetBool("overwrite"),
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter, _ = cmd.Flags().GetString("delimiter")
	}
	if cmd.Flags().Changed("read") {
		cfg.ReadHeaders, _ = cmd.Flags().GetBool("read")
	}
	if cmd.Flags().Changed("browser") {
		cfg.Browser, _ = cmd.Flags().GetBool("browser")
	}
	if cmd.Flags().Changed("overwrite") {
		cfg.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	}
	return cfg
}

func init() {
	rootCmd.Flags().BoolP("browser", "b", false, "wrap the table in <html> and <body> tags")
	rootCmd.Flags().BoolP("read", "r", false, "treat the first input row as the table header")
	rootCmd.Flags().BoolP("overwrite", "f", false, "replace the output file if it exists")
	rootCmd.Flags().StringP("delimiter", "d", types.DefaultDelimiter, "field delimiter")
}
