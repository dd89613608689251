package maze

// Tile classifies one cell of the maze.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePickup
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Terrain is the part of the grid that agents move against.
type Terrain interface {
	CanOccupy(x, y, size int) bool
	WrapX(x int) int
}

// Grid is the live tile matrix of a loaded level. Walls never change;
// pickups turn into empty cells as they are eaten.
type Grid struct {
	width    int
	height   int
	tileSize int
	cells    []Tile // row-major
}

// NewGrid builds a grid from rows of tiles. The rows are copied.
// Rows must be rectangular; a malformed matrix is a caller bug.
func NewGrid(rows [][]Tile, tileSize int) *Grid {
	g := &Grid{tileSize: tileSize, height: len(rows)}
	if g.height > 0 {
		g.width = len(rows[0])
	}
	g.cells = make([]Tile, 0, g.width*g.height)
	for _, row := range rows {
		g.cells = append(g.cells, row...)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TileSize returns the side of one tile in pixels.
func (g *Grid) TileSize() int { return g.tileSize }

// PixelWidth returns the board width in pixels.
func (g *Grid) PixelWidth() int { return g.width * g.tileSize }

// PixelHeight returns the board height in pixels.
func (g *Grid) PixelHeight() int { return g.height * g.tileSize }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Classify returns the tile at (col, row). Callers must stay in bounds.
func (g *Grid) Classify(col, row int) Tile {
	if !g.InBounds(col, row) {
		panic("maze: Classify out of range")
	}
	return g.cells[row*g.width+col]
}

// IsWall reports whether the pixel (x, y) lies on a wall. Pixels outside
// the board count as wall.
func (g *Grid) IsWall(x, y int) bool {
	// Go division truncates toward zero, so x in (-tileSize, 0) maps to
	// column 0. Tunnel rows rely on this.
	col, row := x/g.tileSize, y/g.tileSize
	if !g.InBounds(col, row) {
		return true
	}
	return g.cells[row*g.width+col] == TileWall
}

// CanOccupy reports whether a size x size box with its top-left corner at
// (x, y) touches no wall. Only the four corners are sampled.
func (g *Grid) CanOccupy(x, y, size int) bool {
	return !g.IsWall(x, y) &&
		!g.IsWall(x+size-1, y) &&
		!g.IsWall(x, y+size-1) &&
		!g.IsWall(x+size-1, y+size-1)
}

// WrapX maps an x coordinate that left the board horizontally back onto
// the opposite side.
func (g *Grid) WrapX(x int) int {
	pw := g.PixelWidth()
	switch {
	case x < -g.tileSize:
		return pw - g.tileSize
	case x >= pw:
		return 0
	default:
		return x
	}
}

// ConsumePickup empties the cell at (col, row) and reports whether it held
// a pickup. Out-of-range cells and non-pickup cells are left alone.
func (g *Grid) ConsumePickup(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	i := row*g.width + col
	if g.cells[i] != TilePickup {
		return false
	}
	g.cells[i] = TileEmpty
	return true
}

// CountPickups returns the number of uneaten pickups.
func (g *Grid) CountPickups() int {
	n := 0
	for _, c := range g.cells {
		if c == TilePickup {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]Tile, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}
