package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
	pkgio "github.com/cyberscribe/secret-santa/pkg/io"
	"github.com/cyberscribe/secret-santa/pkg/render"
	"github.com/cyberscribe/secret-santa/pkg/roster"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Seed: opts.Seed,
	}

	// Stage 1: Load
	loadStart := time.Now()
	rst, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Roster = rst
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded roster",
		"participants", len(rst.Participants),
		"partnerships", len(rst.Partnerships),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Generate
	generateStart := time.Now()
	cycle, normalized, err := exchange.Generate(rst, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Cycle = cycle
	result.Normalized = normalized
	result.Warnings = normalized.Warnings
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.ParticipantCount = len(normalized.Participants)
	result.Stats.PartnershipCount = len(normalized.Partnerships)

	for _, w := range normalized.Warnings {
		r.Logger.Warn(w)
	}

	// Partner collisions are advisory. A seam the swap scan could not
	// repair is a documented outcome of the algorithm, not a failure.
	result.Violations = cycle.Violations(normalized.Partners)
	for _, v := range result.Violations {
		r.Logger.Warn("partners assigned to each other",
			"giver", v.Giver,
			"receiver", v.Receiver)
	}

	r.Logger.Info("generated cycle",
		"assignments", len(cycle),
		"seed", opts.Seed,
		"duration", result.Stats.GenerateTime)

	// Stage 3: Verify (optional)
	if opts.Verify {
		verifyStart := time.Now()
		if err := cycle.Validate(normalized.Participants); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCycle, err, "generated assignments failed verification")
		}
		result.Stats.VerifyTime = time.Since(verifyStart)

		r.Logger.Info("verified cycle", "duration", result.Stats.VerifyTime)
	}

	result.Document = pkgio.NewDocument(normalized, cycle, opts.Seed)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(result.Document, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the roster from whichever input source the options name.
// An inline Roster wins over RosterPath, which wins over
// ParticipantsPath. RosterPath is parsed by filename detection;
// ParticipantsPath is always parsed as a plain text list, one name per
// line, regardless of its extension.
func (r *Runner) Load(opts Options) (exchange.Roster, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return exchange.Roster{}, err
	}
	r.applyLogger(&opts)

	opts.Logger.Debug("loading roster",
		"roster", opts.RosterPath,
		"participants", opts.ParticipantsPath,
		"partners", opts.PartnersPath)

	var rst exchange.Roster
	switch {
	case opts.Roster != nil:
		rst = *opts.Roster
	case opts.RosterPath != "":
		loaded, err := roster.Load(opts.RosterPath)
		if err != nil {
			return exchange.Roster{}, err
		}
		rst = loaded
	default:
		loaded, err := (&roster.Text{}).Parse(opts.ParticipantsPath)
		if err != nil {
			return exchange.Roster{}, err
		}
		rst = loaded
	}

	if opts.PartnersPath != "" {
		pairs, err := roster.LoadPartners(opts.PartnersPath)
		if err != nil {
			return exchange.Roster{}, err
		}
		rst.Partnerships = append(rst.Partnerships, pairs...)
	}

	return rst, nil
}

// Render produces one artifact per requested format from an exchange
// document. Used both by Execute and by re-rendering of saved documents.
func (r *Runner) Render(doc *pkgio.Document, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	opts.Logger.Debug("rendering document",
		"id", doc.ID,
		"formats", opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(doc, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(doc *pkgio.Document, format string) ([]byte, error) {
	switch format {
	case FormatText:
		var buf bytes.Buffer
		if err := pkgio.WriteText(doc.Cycle, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(doc, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		dot := render.ToDOT(doc.Cycle, render.Options{Partnerships: doc.Partnerships})
		return []byte(dot), nil
	case FormatSVG:
		dot := render.ToDOT(doc.Cycle, render.Options{Partnerships: doc.Partnerships})
		return render.RenderSVG(dot)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported output format: %s", format)
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
