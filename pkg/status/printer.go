// Package status renders detected modes for the terminal.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/Veraticus/dark-light/pkg/types"
)

const (
	ansiReset = "\033[0m"
	ansiDark  = "\033[35m" // Magenta
	ansiLight = "\033[33m" // Yellow
	ansiGray  = "\033[90m"
)

// Format selects how modes are written
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses "text" or "json". Empty means text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q", s)
	}
}

// record is one JSON output line
type record struct {
	Mode     types.Mode  `json:"mode"`
	Previous *types.Mode `json:"previous,omitempty"`
}

// Printer writes one line per mode. Writes are serialized so follow mode can
// report from the watcher goroutine.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	format Format
	color  bool
}

// NewPrinter creates a new printer. Color only applies to text output and
// should only be enabled for terminals.
func NewPrinter(writer io.Writer, format Format, color bool) *Printer {
	return &Printer{
		writer: writer,
		format: format,
		color:  color && format == FormatText,
	}
}

// Print writes the mode, e.g. "dark" or {"mode":"dark"}.
func (p *Printer) Print(mode types.Mode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format == FormatJSON {
		return p.writeJSON(record{Mode: mode})
	}
	_, err := fmt.Fprintln(p.writer, p.label(mode))
	return err
}

// PrintChange writes a transition, e.g. "light -> dark".
func (p *Printer) PrintChange(from, to types.Mode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.format == FormatJSON {
		return p.writeJSON(record{Mode: to, Previous: &from})
	}

	arrow := "->"
	if p.color {
		arrow = ansiGray + arrow + ansiReset
	}
	_, err := fmt.Fprintf(p.writer, "%s %s %s\n", p.label(from), arrow, p.label(to))
	return err
}

// writeJSON encodes r as a single line; modes go through Mode.MarshalText
func (p *Printer) writeJSON(r record) error {
	if err := json.NewEncoder(p.writer).Encode(r); err != nil {
		return fmt.Errorf("failed to write mode: %w", err)
	}
	return nil
}

// label returns the mode name, colored when enabled
func (p *Printer) label(mode types.Mode) string {
	if !p.color {
		return mode.String()
	}

	// Filled moon for dark, sun for light
	if mode.IsDark() {
		return ansiDark + "☾ " + mode.String() + ansiReset
	}
	return ansiLight + "☀ " + mode.String() + ansiReset
}
