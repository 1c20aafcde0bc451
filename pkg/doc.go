// Package pkg provides the core libraries for drawing secret santa exchanges.
//
// # Overview
//
// A draw takes a list of participants plus the partnerships to keep apart and
// produces a single closed gifting loop: everyone gives once, receives once,
// never to themselves, never straight back, and never to their own partner.
// The pkg directory is organized into four main areas:
//
//  1. [exchange] - Domain logic (normalization, partitioning, cycle linking)
//  2. [roster] - Input parsing (text, TOML, and YAML rosters)
//  3. [pipeline] - Orchestration (load → generate → render)
//  4. [io] and [render] - Output (exchange documents and Graphviz diagrams)
//
// # Architecture
//
// The typical data flow through a draw:
//
//	participants / partners / roster file
//	         ↓
//	    [roster] package (parse input files)
//	         ↓
//	    [exchange] package (normalize → partition → link)
//	         ↓
//	    [io] and [render] packages (documents and diagrams)
//	         ↓
//	    text/JSON/DOT/SVG output
//
// # Quick Start
//
// Draw a cycle and render a diagram:
//
//	import (
//	    "fmt"
//
//	    "github.com/cyberscribe/secret-santa/pkg/exchange"
//	    "github.com/cyberscribe/secret-santa/pkg/render"
//	)
//
//	roster := exchange.Roster{
//	    Participants: []string{"Alice", "Bob", "Carol", "Dave"},
//	    Partnerships: []exchange.Partnership{{A: "Alice", B: "Bob"}},
//	}
//
//	// 1. Draw the cycle
//	cycle, normalized, _ := exchange.Generate(roster, 42)
//
//	// 2. Inspect assignments
//	for _, a := range cycle {
//	    fmt.Println(a) // "Alice -> Carol"
//	}
//
//	// 3. Render a diagram
//	dot := render.ToDOT(cycle, render.Options{Partnerships: normalized.Partnerships})
//
// # Main Packages
//
// ## Domain Logic
//
// [exchange] - The draw algorithm. Normalize deduplicates and validates the
// roster, Partition splits partners into two groups, and Link shuffles both
// groups and welds them into one closed cycle. Validate and Violations check
// finished cycles.
//
// [roster] - Roster sources. A plain text list (one name per line) with an
// optional partner CSV, or a single TOML or YAML file carrying both. Load
// picks the parser by file extension.
//
// ## Output
//
// [io] - Exchange documents: a drawn cycle plus the participants, seed, and
// timestamp needed to archive or replay it. JSON export and import, and the
// plain text assignment listing.
//
// [render] - Graphviz gifting diagrams. ToDOT emits DOT source with one node
// per participant, one edge per assignment, and dashed partnership links;
// RenderSVG rasterizes it in-process.
//
// ## Infrastructure
//
// [pipeline] - Complete draw pipeline (load → generate → render) used by the
// CLI. Options carries the inputs, seed, and formats; Runner executes the
// stages and reports per-stage timings.
//
// [errors] - Coded errors shared across packages. Codes such as
// INSUFFICIENT_PARTICIPANTS and INVALID_ROSTER survive wrapping and map to
// user-facing messages.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Common Workflows
//
// Load a roster file:
//
//	rst, _ := roster.Load("roster.toml")
//
// Save a draw and reload it later:
//
//	doc := io.NewDocument(normalized, cycle, seed)
//	_ = io.ExportJSON(doc, "cycle.json")
//	doc, _ = io.ImportJSON("cycle.json")
//
// Verify a finished cycle:
//
//	if err := cycle.Validate(normalized.Participants); err != nil {
//	    // not a single closed loop
//	}
//	for _, v := range cycle.Violations(normalized.Partners) {
//	    fmt.Printf("%s drew their partner %s\n", v.Giver, v.Receiver)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/exchange/...  # Specific package
//	go test -run Example        # Examples only
//
// [exchange]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/exchange
// [roster]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/roster
// [pipeline]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/io
// [render]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/render
// [errors]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/cyberscribe/secret-santa/pkg/buildinfo
package pkg
