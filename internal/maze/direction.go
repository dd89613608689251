package maze

// Direction is one of the four compass headings an agent can move in.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{Left, Right, Up, Down}

// Angle returns the heading in degrees, counter-clockwise from Right.
// It only matters to renderers.
func (d Direction) Angle() int {
	switch d {
	case Right:
		return 0
	case Up:
		return 90
	case Left:
		return 180
	case Down:
		return 270
	default:
		return 0
	}
}

// Delta returns the unit step for the direction in screen coordinates
// (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
