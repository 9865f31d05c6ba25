package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports malformed puzzle input. Line is 1-based; line 1 is
// the dimensions line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Grid is a toroidal field of directional pointers, immutable once
// parsed. Stepping past any edge wraps to the opposite side, so every
// cell has exactly one successor and boundary cases cannot occur.
type Grid struct {
	width  int
	height int
	cells  [][]Direction // row-major, cells[y][x]
}

// Parse reads a grid from r. The first line carries "width height";
// each of the next height lines carries exactly width arrow glyphs.
// Trailing blank lines are tolerated, CR line endings are stripped.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read puzzle input: %w", err)
		}
		return nil, &ParseError{Line: 1, Msg: "missing dimensions line"}
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return nil, &ParseError{
			Line: 1,
			Msg:  fmt.Sprintf("dimensions line has %d elements when it must have 2", len(fields)),
		}
	}
	width, err := parseDimension(fields[0], "width")
	if err != nil {
		return nil, err
	}
	height, err := parseDimension(fields[1], "height")
	if err != nil {
		return nil, err
	}

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != height {
		return nil, &ParseError{
			Line: len(lines) + 1,
			Msg:  fmt.Sprintf("input contains %d lines of pointers when it should contain %d", len(lines), height),
		}
	}

	cells := make([][]Direction, height)
	for y, line := range lines {
		if len(line) != width {
			return nil, &ParseError{
				Line: y + 2,
				Msg:  fmt.Sprintf("line contains %d pointers when it should contain %d", len(line), width),
			}
		}
		row := make([]Direction, width)
		for x := 0; x < width; x++ {
			d, err := ParseDirection(line[x])
			if err != nil {
				return nil, &ParseError{Line: y + 2, Msg: err.Error()}
			}
			row[x] = d
		}
		cells[y] = row
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

func parseDimension(field, name string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n <= 0 {
		return 0, &ParseError{
			Line: 1,
			Msg:  fmt.Sprintf("%s must be a positive integer, got %q", name, field),
		}
	}
	return n, nil
}

// Load reads and parses the puzzle file at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle input: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the pointer stored at (x, y).
func (g *Grid) At(x, y int) Direction { return g.cells[y][x] }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Step advances pos by delta within a dimension of size dim, wrapping
// at both ends. The result is in [0, dim) for any integer delta.
func Step(pos, delta, dim int) int {
	n := (pos + delta) % dim
	if n < 0 {
		n += dim
	}
	return n
}

// Neighbor returns the coordinate reached by following the pointer
// stored at (x, y).
func (g *Grid) Neighbor(x, y int) (nx, ny int) {
	dx, dy := g.cells[y][x].Delta()
	return Step(x, dx, g.width), Step(y, dy, g.height)
}
