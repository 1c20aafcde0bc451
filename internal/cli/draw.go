package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/cyberscribe/secret-santa/pkg/io"
	"github.com/cyberscribe/secret-santa/pkg/pipeline"
)

// drawFormats is the set of diagram formats the draw command produces.
var drawFormats = map[string]bool{
	pipeline.FormatDOT: true,
	pipeline.FormatSVG: true,
}

// validateDrawFormats checks that all requested formats are diagram formats.
func validateDrawFormats(formats []string) error {
	for _, f := range formats {
		if !drawFormats[f] {
			return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", f)
		}
	}
	return nil
}

// drawCommand creates the draw command for rendering a saved exchange
// as a Graphviz diagram.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "draw <cycle.json>",
		Short: "Render a saved exchange as a gifting diagram",
		Long: `Render a saved exchange document as a Graphviz gifting diagram.

The diagram shows every participant as a node and every assignment as a
directed edge, with declared partnerships drawn as dashed links.

Examples:
  santa draw cycle.json               # cycle.svg next to the input
  santa draw cycle.json -f dot        # Graphviz source only
  santa draw cycle.json -f dot,svg -o out/exchange`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr, pipeline.FormatSVG)
			if err := validateDrawFormats(formats); err != nil {
				return err
			}
			return c.runDraw(args[0], formats, output)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")

	return cmd
}

// runDraw loads the document and renders the requested diagram formats.
func (c *CLI) runDraw(input string, formats []string, output string) error {
	doc, err := pkgio.ImportJSON(input)
	if err != nil {
		return err
	}

	printInfo("Rendering %s (%d assignments)", input, len(doc.Cycle))

	runner := c.newRunner()
	prog := newProgress(c.Logger)
	artifacts, err := runner.Render(doc, pipeline.Options{Formats: formats, Logger: c.Logger})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d diagrams", len(artifacts)))

	printSuccess("Drawing complete")
	_, err = writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   formats,
		input:     input,
		output:    output,
	})
	return err
}
