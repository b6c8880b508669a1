// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ","

// ReaderConfig holds settings for the delimited-text row reader.
type ReaderConfig struct {
	// Delimiter is the field separator (default ","). Only the first rune
	// is significant.
	Delimiter string `json:"delimiter" yaml:"delimiter"`
}

// Comma returns the configured delimiter as a rune, falling back to ','
// when no delimiter is set.
func (c ReaderConfig) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// ConvertConfig holds settings for a single CSV-to-HTML conversion.
type ConvertConfig struct {
	ReaderConfig `yaml:",inline"`

	// ReadHeaders treats the first input row as the table header.
	ReadHeaders bool `json:"read_headers" yaml:"read_headers"`

	// Browser wraps the table in a minimal HTML document so the output
	// opens directly in a browser.
	Browser bool `json:"browser" yaml:"browser"`

	// Overwrite lets the persistence step replace an existing output file.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}
