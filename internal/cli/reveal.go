package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgio "github.com/cyberscribe/secret-santa/pkg/io"
)

// revealCommand creates the reveal command for interactively showing
// assignments one giver at a time.
func (c *CLI) revealCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <cycle.json>",
		Short: "Reveal assignments one giver at a time",
		Long: `Reveal a saved exchange interactively, one giver at a time.

Pass the keyboard around: each giver moves to their own name, presses
enter to see who they are buying for, then hides the row again before
handing the keyboard on. Receivers never stay on screen.

Examples:
  santa reveal cycle.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReveal(args[0])
		},
	}
}

// runReveal loads the document and runs the interactive reveal.
func (c *CLI) runReveal(path string) error {
	doc, err := pkgio.ImportJSON(path)
	if err != nil {
		return err
	}
	if len(doc.Cycle) == 0 {
		printError("No assignments in %s", path)
		return fmt.Errorf("empty exchange document: %s", path)
	}

	p := tea.NewProgram(NewRevealModel(doc.Cycle))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("reveal: %w", err)
	}

	if m, ok := finalModel.(RevealModel); ok {
		printDetail("revealed %d of %d assignments", len(m.Seen), len(m.Assignments))
	}
	return nil
}
