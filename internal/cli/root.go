package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arrows <input-file>",
		Short: "Find the longest arrow cycle in a toroidal grid puzzle",
		Long: `Arrows reads a grid of directional pointers (^ v < >) in which every
cell points at a neighbouring cell, wrapping past the grid edges.
Following pointers cell to cell always settles into a loop; arrows
reports the longest such loop and redraws the grid with only the
looping cells visible.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunSolve,
	}
	rootCmd.Flags().Bool("json", false, "Print machine-readable cycle summary")
	rootCmd.Flags().Bool("color", false, "Highlight cycle cells with ANSI color")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arrows %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
