package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arrowgrid/arrows/internal/cycle"
	"github.com/arrowgrid/arrows/internal/grid"
	"github.com/arrowgrid/arrows/internal/render"
)

// RunSolve loads the puzzle named by the single positional argument,
// finds its longest cycle and prints the report.
func RunSolve(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	colored, err := cmd.Flags().GetBool("color")
	if err != nil {
		return fmt.Errorf("failed to read --color flag: %w", err)
	}

	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}

	longest := cycle.Longest(g)

	out := cmd.OutOrStdout()
	if asJSON {
		return render.WriteJSON(out, g, longest)
	}
	if colored {
		render.WriteColorReport(out, g, longest)
		return nil
	}
	render.WriteReport(out, g, longest)
	return nil
}
