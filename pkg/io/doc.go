// Package io provides JSON import and export for completed draws.
//
// # Overview
//
// A generated cycle is saved as an exchange document: the assignments plus
// the roster and seed that produced them. The format is designed for:
//
//   - Handing the draw to the organizer as a single self-contained file
//   - Re-rendering a saved draw without re-running it (santa draw)
//   - Revealing assignments one at a time later (santa reveal)
//   - Replay verification: the embedded seed lets anyone re-run the draw
//
// # JSON Format
//
//	{
//	  "id": "4f1c03a2-8a3c-4b62-9d18-0b6f6a7a9e11",
//	  "generated_at": "2025-12-01T18:30:00Z",
//	  "seed": 1234,
//	  "participants": ["Alice", "Bob", "Carol"],
//	  "partnerships": [["Alice", "Bob"]],
//	  "assignments": [
//	    {"giver": "Alice", "receiver": "Carol"},
//	    {"giver": "Carol", "receiver": "Bob"},
//	    {"giver": "Bob", "receiver": "Alice"}
//	  ]
//	}
//
// # Import and Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] for any
// io.Writer. [ImportJSON] and [ReadJSON] are the reading counterparts and
// validate the document structure on the way in:
//
//	doc, err := io.ImportJSON("draw.json")
//	if err != nil {
//	    return err
//	}
//
// [WriteText] renders the plain "Giver -> Receiver" listing.
package io
