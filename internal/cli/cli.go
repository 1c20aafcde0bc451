// Package cli implements the santa command-line interface.
//
// This package provides commands for drawing secret santa gift cycles
// from roster files, validating rosters and saved exchange documents,
// rendering gifting diagrams, and revealing assignments one giver at a
// time. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Draw a gift cycle from participants and partnerships
//   - check: Validate a roster or a saved exchange document
//   - draw: Render a saved exchange document as a Graphviz diagram
//   - reveal: Interactively show assignments one giver at a time
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/cyberscribe/secret-santa/pkg/buildinfo"
	"github.com/cyberscribe/secret-santa/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and environment prefixes.
const appName = "santa"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	env, err := loadEnv()
	if err != nil {
		c.Logger.Warnf("Ignoring SANTA_* environment: %v", err)
		env = envConfig{}
	}
	if env.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	root := &cobra.Command{
		Use:          appName,
		Short:        "Santa draws secret gift exchanges",
		Long:         `Santa is a CLI tool for drawing secret santa gift exchanges as a single closed gifting loop: everyone gives and receives exactly one gift, never to themselves, never straight back, and never to their own partner.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand(env))
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.revealCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string falls back to the given default, then to the pipeline
// default.
func parseFormats(s, fallback string) []string {
	if s == "" {
		s = fallback
	}
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles arguments for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // input path used to derive output names
	output    string // explicit output path, or base path for multiple formats
}

// writeArtifacts writes rendered artifacts to disk and returns the path
// written per format. A single format with an explicit output goes exactly
// there; otherwise every format gets base.<format>, with base derived from
// the output or input path.
func writeArtifacts(p artifactWriteParams) (map[string]string, error) {
	paths := make(map[string]string, len(p.formats))

	if len(p.formats) == 1 && p.output != "" {
		format := p.formats[0]
		if err := writeArtifact(p.artifacts[format], p.output); err != nil {
			return nil, err
		}
		paths[format] = p.output
		return paths, nil
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		path := base + "." + format
		if err := writeArtifact(p.artifacts[format], path); err != nil {
			return nil, err
		}
		paths[format] = path
	}
	return paths, nil
}

// writeArtifact writes one artifact and prints the file line.
func writeArtifact(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input; with no input
// either, it falls back to "exchange". If output has a format extension
// (.json, .svg, etc.), that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "exchange"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
