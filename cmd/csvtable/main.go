// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the csvtable CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/csvtable/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it performs a single conversion.
var rootCmd = &cobra.Command{
	Use:   "csvtable [input] [output]",
	Short: "Convert CSV data to an HTML table",
	Long: `csvtable converts comma-separated data into an HTML <table>. By default it
reads from standard input and writes to standard output; give an input
file and optionally an output file as positional arguments.

With --browser the table is wrapped in <html> and <body> tags so the
output opens directly in a browser. With --read the first input row
becomes the table header.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./csvtable.yaml or ~/.config/csvtable/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("csvtable")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "csvtable"))
		}
	}

	viper.SetDefault("delimiter", types.DefaultDelimiter)
	viper.SetEnvPrefix("CSVTABLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
