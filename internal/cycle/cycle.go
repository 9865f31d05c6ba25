package cycle

import (
	"fmt"

	"github.com/arrowgrid/arrows/internal/grid"
)

// Node is a single cell of the field together with the pointer stored
// there.
type Node struct {
	X       int
	Y       int
	Pointer grid.Direction
}

// Cycle is an ordered run of nodes in which each node's pointer leads
// to the next and the last node's pointer leads back to the first. No
// coordinate appears twice within a cycle.
type Cycle []Node

// OutOfBoundsError reports a trace started outside the field.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("start position (%d,%d) is out of bounds for a %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

type coord struct{ x, y int }

// TraceFrom follows pointers from (x, y) until a coordinate repeats and
// returns the cycle the walk settled into. The starting cell need not
// be part of the result: any acyclic prelude walked before entering the
// cycle is trimmed off. The walk always terminates, since the field is
// finite and every cell has exactly one successor.
func TraceFrom(g *grid.Grid, x, y int) (Cycle, error) {
	if !g.Contains(x, y) {
		return nil, &OutOfBoundsError{X: x, Y: y, Width: g.Width(), Height: g.Height()}
	}
	return traceFrom(g, x, y), nil
}

func traceFrom(g *grid.Grid, x, y int) Cycle {
	var trace Cycle
	firstSeen := make(map[coord]int)

	for {
		c := coord{x, y}
		if start, seen := firstSeen[c]; seen {
			return trace[start:]
		}
		firstSeen[c] = len(trace)
		trace = append(trace, Node{X: x, Y: y, Pointer: g.At(x, y)})
		x, y = g.Neighbor(x, y)
	}
}

// Longest returns the longest cycle in the field. The scan walks x as
// the outer axis and y as the inner one, and only a strictly longer
// cycle replaces the current best; ties therefore go to the cycle first
// reached from the smallest x, then the smallest y. The result is empty
// only for a degenerate zero-sized grid.
func Longest(g *grid.Grid) Cycle {
	var best Cycle
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if c := traceFrom(g, x, y); len(c) > len(best) {
				best = c
			}
		}
	}
	return best
}
