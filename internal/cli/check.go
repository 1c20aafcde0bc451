package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyberscribe/secret-santa/pkg/errors"
	"github.com/cyberscribe/secret-santa/pkg/exchange"
	pkgio "github.com/cyberscribe/secret-santa/pkg/io"
	"github.com/cyberscribe/secret-santa/pkg/pipeline"
)

// checkCommand creates the check command for validating rosters and
// saved exchange documents.
func (c *CLI) checkCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "check [cycle.json]",
		Short: "Validate a roster or a saved exchange",
		Long: `Validate roster inputs without drawing, or verify a saved exchange.

With roster flags the command loads and normalizes the inputs and reports
what a draw would see. With a cycle.json argument it verifies that the
saved assignments still form a single closed loop over the recorded
participants.

Examples:
  santa check -p people.txt --partners duos.csv
  santa check -r roster.toml
  santa check cycle.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return c.runCheckDocument(args[0])
			}
			return c.runCheckRoster(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ParticipantsPath, "participants", "p", "", "participants file, one name per line")
	cmd.Flags().StringVar(&opts.PartnersPath, "partners", "", "partnerships file, two comma-separated names per line")
	cmd.Flags().StringVarP(&opts.RosterPath, "roster", "r", "", "roster file (TOML or YAML)")

	return cmd
}

// runCheckRoster loads and normalizes the roster inputs and reports the
// result without drawing a cycle.
func (c *CLI) runCheckRoster(opts pipeline.Options) error {
	runner := c.newRunner()
	opts.Logger = c.Logger

	rst, err := runner.Load(opts)
	if err != nil {
		return err
	}

	normalized, err := exchange.Normalize(rst)
	if err != nil {
		return err
	}

	for _, w := range normalized.Warnings {
		printWarning("%s", w)
	}

	printSuccess("Roster OK")
	printStats(len(normalized.Participants), len(normalized.Partnerships))
	for _, p := range normalized.Partnerships {
		printDetail("keeping %s and %s apart", p.A, p.B)
	}
	return nil
}

// runCheckDocument verifies a saved exchange document.
func (c *CLI) runCheckDocument(path string) error {
	doc, err := pkgio.ImportJSON(path)
	if err != nil {
		return err
	}

	if err := doc.Cycle.Validate(doc.Participants); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidCycle, err, "%s does not hold a valid cycle", path)
	}

	// Partner collisions are advisory, same as at draw time.
	for _, v := range doc.Cycle.Violations(doc.Partners()) {
		printWarning("%s and %s are partners but ended up matched", v.Giver, v.Receiver)
	}

	printSuccess("Cycle OK")
	printStats(len(doc.Participants), len(doc.Partnerships))
	printKeyValue("Exchange", doc.ID)
	printKeyValue("Drawn", doc.GeneratedAt.Format(time.RFC3339))
	printKeyValue("Seed", strconv.FormatUint(doc.Seed, 10))
	return nil
}
