package grid

import "fmt"

// Direction is one of the four cardinal pointers a cell can hold.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection maps an arrow glyph to its Direction.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	}
	return 0, fmt.Errorf("%q is not a recognizable direction", string(c))
}

// Glyph returns the arrow character for d.
func (d Direction) Glyph() byte {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the unit offset d applies to a coordinate. Up decreases
// y and Down increases it; Left decreases x and Right increases it.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}
