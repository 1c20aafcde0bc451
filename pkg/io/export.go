package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

// WriteJSON encodes a document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(d *Document, w io.Writer) error {
	out := document{
		ID:           d.ID,
		GeneratedAt:  d.GeneratedAt,
		Seed:         d.Seed,
		Participants: d.Participants,
		Assignments:  make([]assignment, len(d.Cycle)),
	}
	for _, p := range d.Partnerships {
		out.Partnerships = append(out.Partnerships, []string{p.A, p.B})
	}
	for i, a := range d.Cycle {
		out.Assignments[i] = assignment{Giver: a.Giver, Receiver: a.Receiver}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// WriteText renders a cycle as plain "Giver -> Receiver" lines.
func WriteText(cycle exchange.Cycle, w io.Writer) error {
	for _, a := range cycle {
		if _, err := fmt.Fprintln(w, a.String()); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// ExportText writes the plain text listing of a cycle to a file at path.
func ExportText(cycle exchange.Cycle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteText(cycle, f)
}
