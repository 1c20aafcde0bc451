package cli

import (
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cyberscribe/secret-santa/pkg/pipeline"
)

// generateCommand creates the generate command for drawing a gift cycle.
func (c *CLI) generateCommand(env envConfig) *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{Seed: env.Seed}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw a gift cycle from a roster",
		Long: `Draw a secret santa gift cycle from a roster of participants.

Every participant gives exactly one gift and receives exactly one gift,
forming a single closed loop. Declared partners are placed on opposite
sides of the loop so nobody draws their own partner.

Examples:
  santa generate -p people.txt                      # One name per line
  santa generate -p people.txt --partners duos.csv  # Keep couples apart
  santa generate -r roster.toml --seed 42           # Reproducible draw
  santa generate -r roster.toml -f json -o cycle.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr, env.Format)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output)
		},
	}

	// Input flags
	cmd.Flags().StringVarP(&opts.ParticipantsPath, "participants", "p", "", "participants file, one name per line")
	cmd.Flags().StringVar(&opts.PartnersPath, "partners", "", "partnerships file, two comma-separated names per line")
	cmd.Flags().StringVarP(&opts.RosterPath, "roster", "r", "", "roster file (TOML or YAML)")

	// Draw flags
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed (0 draws a fresh one)")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "verify the drawn cycle before writing")

	// Output flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), json, dot, svg (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")

	return cmd
}

// runGenerate executes the pipeline and presents the drawn exchange.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string) error {
	runner := c.newRunner()
	opts.Logger = c.Logger

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarning("%s", w)
	}
	for _, v := range result.Violations {
		printWarning("%s and %s are partners but ended up matched", v.Giver, v.Receiver)
	}

	printSuccess("Exchange drawn")
	printStats(result.Stats.ParticipantCount, result.Stats.PartnershipCount)

	// Without an explicit output file the text format is shown directly.
	showListing := output == "" && slices.Contains(opts.Formats, pipeline.FormatText)
	if showListing {
		printNewline()
		for _, a := range result.Cycle {
			printAssignment(a.Giver, a.Receiver)
		}
	}

	fileFormats := opts.Formats
	if showListing {
		fileFormats = lo.Filter(opts.Formats, func(f string, _ int) bool {
			return f != pipeline.FormatText
		})
	}

	input := opts.RosterPath
	if input == "" {
		input = opts.ParticipantsPath
	}

	var paths map[string]string
	if len(fileFormats) > 0 {
		paths, err = writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   fileFormats,
			input:     input,
			output:    output,
		})
		if err != nil {
			return err
		}
	}

	if jsonPath, ok := paths[pipeline.FormatJSON]; ok {
		printNextStep("Reveal", "santa reveal "+jsonPath)
	}

	printNewline()
	printDetail("replay with --seed %d", result.Seed)
	return nil
}
