package cycle

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arrowgrid/arrows/internal/grid"
)

func randomGrid(w, h int, seed int64) (*grid.Grid, error) {
	glyphs := []byte{'^', 'v', '<', '>'}
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.WriteString(strconv.Itoa(w) + " " + strconv.Itoa(h))
	b.WriteByte('\n')
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteByte(glyphs[rng.Intn(len(glyphs))])
		}
		b.WriteByte('\n')
	}
	return grid.Parse(strings.NewReader(b.String()))
}

// TestTraceProperties checks the structural guarantees of a trace on
// arbitrary fields: the result is a closed loop, visits no coordinate
// twice, and is found within at most width*height steps.
func TestTraceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every trace yields a closed, duplicate-free cycle", prop.ForAll(
		func(w, h int, seed int64) bool {
			g, err := randomGrid(w, h, seed)
			if err != nil {
				return false
			}
			for x := 0; x < w; x++ {
				for y := 0; y < h; y++ {
					c, err := TraceFrom(g, x, y)
					if err != nil || len(c) == 0 || len(c) > w*h {
						return false
					}
					seen := make(map[[2]int]bool, len(c))
					for _, n := range c {
						key := [2]int{n.X, n.Y}
						if seen[key] {
							return false
						}
						seen[key] = true
					}
					for i, n := range c {
						nx, ny := g.Neighbor(n.X, n.Y)
						next := c[(i+1)%len(c)]
						if nx != next.X || ny != next.Y {
							return false
						}
					}
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.Int64(),
	))

	properties.Property("the longest cycle is at least as long as any trace", prop.ForAll(
		func(w, h int, seed int64) bool {
			g, err := randomGrid(w, h, seed)
			if err != nil {
				return false
			}
			best := Longest(g)
			if len(best) == 0 {
				return false
			}
			for x := 0; x < w; x++ {
				for y := 0; y < h; y++ {
					c, err := TraceFrom(g, x, y)
					if err != nil || len(c) > len(best) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(1, 8),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
