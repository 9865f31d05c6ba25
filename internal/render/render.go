package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arrowgrid/arrows/internal/cycle"
	"github.com/arrowgrid/arrows/internal/grid"
)

var cycleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

// Overlay renders the field with only the cycle's cells visible: each
// cycle cell shows its arrow glyph, every other cell a space.
func Overlay(g *grid.Grid, c cycle.Cycle) []string {
	rows := make([][]byte, g.Height())
	for y := range rows {
		row := make([]byte, g.Width())
		for x := range row {
			row[x] = ' '
		}
		rows[y] = row
	}
	for _, n := range c {
		rows[n.Y][n.X] = n.Pointer.Glyph()
	}

	lines := make([]string, len(rows))
	for y, row := range rows {
		lines[y] = string(row)
	}
	return lines
}

// WriteReport prints the cycle length and the overlaid field.
func WriteReport(w io.Writer, g *grid.Grid, c cycle.Cycle) {
	fmt.Fprintf(w, "Longest cycle: %d\n", len(c))
	fmt.Fprintln(w, "Position:")
	for _, line := range Overlay(g, c) {
		fmt.Fprintln(w, line)
	}
}

// WriteColorReport is WriteReport with the cycle cells highlighted.
func WriteColorReport(w io.Writer, g *grid.Grid, c cycle.Cycle) {
	fmt.Fprintf(w, "Longest cycle: %d\n", len(c))
	fmt.Fprintln(w, "Position:")
	for _, line := range Overlay(g, c) {
		for i := 0; i < len(line); i++ {
			if line[i] == ' ' {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprint(w, cycleStyle.Render(string(line[i])))
		}
		fmt.Fprintln(w)
	}
}

// Summary is the machine-readable shape of a solved puzzle.
type Summary struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Length int           `json:"length"`
	Nodes  []SummaryNode `json:"nodes"`
}

// SummaryNode is one cycle cell in a Summary.
type SummaryNode struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
}

// Report builds the Summary for a solved puzzle.
func Report(g *grid.Grid, c cycle.Cycle) Summary {
	nodes := make([]SummaryNode, 0, len(c))
	for _, n := range c {
		nodes = append(nodes, SummaryNode{X: n.X, Y: n.Y, Glyph: string(n.Pointer.Glyph())})
	}
	return Summary{
		Width:  g.Width(),
		Height: g.Height(),
		Length: len(c),
		Nodes:  nodes,
	}
}

// WriteJSON encodes the summary, indented for human consumption.
func WriteJSON(w io.Writer, g *grid.Grid, c cycle.Cycle) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Report(g, c))
}
