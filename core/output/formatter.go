// Package output provides output formatting for restriction check reports.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// NewFormatter returns the formatter for the requested format. noColor only
// affects the CLI format.
func NewFormatter(format Format, noColor bool) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{noColor: noColor}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
