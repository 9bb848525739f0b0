// Package printer renders a parsed prefetch record for human or machine
// consumption. It is a thin presentation layer over the prefetch package:
// nothing here re-reads the underlying buffer.
package printer

import (
	"fmt"
	"io"

	"github.com/pfkit/pfkit/prefetch"
)

const (
	DefaultIndentSize = 2
	timeLayout        = "2006-01-02 15:04:05 MST"
)

// Format specifies the output format for printing.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options controls what the printer emits.
type Options struct {
	Format Format

	// ShowTimestamps renders last-run and volume-creation FILETIMEs as
	// wall-clock times instead of raw hex.
	ShowTimestamps bool

	// ShowFilesAccessed includes the filename-strings section.
	ShowFilesAccessed bool

	// ShowRawFields includes the opaque/unknown fields as hex.
	ShowRawFields bool

	IndentSize int
}

// Printer renders prefetch records to a writer.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a Printer with the given options. Zero-value options mean
// text format with default indentation.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize == 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// Print renders the record in the configured format.
func (p *Printer) Print(pf *prefetch.Prefetch) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(pf)
	case FormatJSON:
		return p.printJSON(pf)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
