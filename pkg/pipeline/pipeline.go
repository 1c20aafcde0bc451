// Package pipeline provides the core exchange pipeline for santa.
//
// This package implements the complete load → generate → render pipeline
// shared by the CLI subcommands. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read participants and partnerships from roster files
//  2. Generate: Normalize the roster and assemble the gift cycle
//  3. Render: Produce output in various formats (text, JSON, DOT, SVG)
//
// An optional verification step between generate and render re-checks
// the cycle invariants before any output is produced.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    ParticipantsPath: "people.txt",
//	    PartnersPath:     "couples.csv",
//	    Formats:          []string{"text"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts["text"]))
//
// Run individual stages:
//
//	// Load only
//	roster, err := runner.Load(loadOpts)
//
//	// Render an existing exchange document
//	artifacts, err := runner.Render(doc, renderOpts)
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
	pkgio "github.com/cyberscribe/secret-santa/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the exchange pipeline.
type Options struct {
	// Load options. An inline Roster takes precedence over RosterPath,
	// which takes precedence over ParticipantsPath. PartnersPath adds
	// partnerships on top of whichever source was loaded.
	Roster           *exchange.Roster `json:"roster,omitempty"`
	RosterPath       string           `json:"roster_path,omitempty"`
	ParticipantsPath string           `json:"participants_path,omitempty"`
	PartnersPath     string           `json:"partners_path,omitempty"`

	// Generate options
	Seed   uint64 `json:"seed,omitempty"`
	Verify bool   `json:"verify,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Roster is the raw roster as loaded from the input source.
	Roster exchange.Roster

	// Normalized is the deduplicated and validated roster.
	Normalized *exchange.Normalized

	// Warnings lists non-fatal normalization findings.
	Warnings []string

	// Cycle is the generated gift assignment cycle.
	Cycle exchange.Cycle

	// Violations lists partnered pairs the seam resolution could not
	// keep apart. Always computed, never fatal.
	Violations []exchange.Violation

	// Document is the exportable exchange record (id, timestamp, seed).
	Document *pkgio.Document

	// Seed is the effective seed used for this run. When Options.Seed
	// was zero this is the randomly drawn replacement, so the run can
	// be replayed.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParticipantCount int
	PartnershipCount int
	LoadTime         time.Duration
	GenerateTime     time.Duration
	VerifyTime       time.Duration
	RenderTime       time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: text, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetGenerateDefaults()
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Roster == nil && o.RosterPath == "" && o.ParticipantsPath == "" {
		return fmt.Errorf("a roster or participants file is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetGenerateDefaults sets default values for cycle generation.
// A zero seed is replaced with a randomly drawn one so repeated runs
// produce different exchanges; the drawn value stays on the options and
// is reported in the result so a run can be replayed with --seed.
func (o *Options) SetGenerateDefaults() {
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}
